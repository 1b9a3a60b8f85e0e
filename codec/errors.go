package codec

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedHex        = errors.New("malformed hex")
	ErrDecode              = errors.New("decode failed")
	ErrEncode              = errors.New("encode failed")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// DecodeError reports a byte that has no meaning under a strict encoding.
type DecodeError struct {
	Encoding Encoding
	Offset   int
	Byte     byte
	Reason   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: cannot decode byte 0x%02x at offset %d as %s: %s", ErrDecode, e.Byte, e.Offset, e.Encoding, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

// EncodeError reports a character the target encoding cannot represent.
// It is only returned by EncodeStrict.
type EncodeError struct {
	Encoding Encoding
	Position int
	Rune     rune
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s: character %q (U+%04X) at position %d is not representable in %s", ErrEncode, e.Rune, e.Rune, e.Position, e.Encoding)
}

func (e *EncodeError) Unwrap() error {
	return ErrEncode
}

// ErrorString formats a conversion error as the message shown to a user.
func ErrorString(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrMalformedHex):
		return fmt.Sprintf("Invalid hex input: %v", err)
	case errors.Is(err, ErrDecode):
		return fmt.Sprintf("Decode error: %v", err)
	case errors.Is(err, ErrEncode):
		return fmt.Sprintf("Encode error: %v", err)
	case errors.Is(err, ErrUnsupportedEncoding):
		return fmt.Sprintf("Warning: %v", err)
	}
	return fmt.Sprintf("Error: %v", err)
}
