package codec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// CleanHex drops whitespace and every other character outside [0-9a-fA-F].
func CleanHex(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isHexDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EncodeHex returns lowercase hex digits with no separators.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex cleans s and converts the remaining digits to bytes.
func DecodeHex(s string) ([]byte, error) {
	digits := CleanHex(s)
	if len(digits)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of hex digits (%d)", ErrMalformedHex, len(digits))
	}
	data, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return data, nil
}

// HexToText decodes a hex string into text using the named encoding.
func HexToText(s, name string) (string, error) {
	data, err := DecodeHex(s)
	if err != nil {
		return "", err
	}
	return Decode(data, name)
}

// TextToHex encodes text and returns its hex digits with the encode result.
func TextToHex(text, name string) (string, *Result) {
	result := Encode(text, name)
	return EncodeHex(result.Bytes), result
}
