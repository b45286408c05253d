package base

import (
	"encoding/hex"
	"strings"
)

// HexPrefix is a prefix over hex digits, as a user might type it when
// naming a commit or change ("abc", "abcd1"). It may hold an odd number of
// digits, in which case it names a half-byte and matches only on the
// leading nibble of whichever byte that digit falls in.
type HexPrefix struct {
	digits string
}

// NewHexPrefix validates and constructs a HexPrefix from its hex digit
// string. It panics if s contains a non-hex-digit byte: callers are
// expected to validate user-typed text before it reaches this point (name
// resolution happens upstream of the engine).
func NewHexPrefix(s string) HexPrefix {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			panic("base: invalid hex prefix " + s)
		}
	}
	return HexPrefix{digits: strings.ToLower(s)}
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// MinPrefixBytes returns the lower-bound byte string for a binary search
// over a byte-lexicographically-sorted sequence of ids: the smallest byte
// string any id carrying this prefix could possibly have. An odd-length
// prefix is padded with a trailing zero nibble, since "0" is the smallest
// possible value for the unconstrained half of the final byte.
func (p HexPrefix) MinPrefixBytes() []byte {
	digits := p.digits
	if len(digits)%2 == 1 {
		digits += "0"
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		panic(err)
	}
	return b
}

// Matches reports whether idBytes, read as a full-length id, begins with
// this prefix's hex digits.
func (p HexPrefix) Matches(idBytes []byte) bool {
	return strings.HasPrefix(hex.EncodeToString(idBytes), p.digits)
}
