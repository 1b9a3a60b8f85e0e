package codec

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// bytes with no assigned character in Windows-1252
var cp1252Undefined = map[byte]bool{
	0x81: true,
	0x8d: true,
	0x8f: true,
	0x90: true,
	0x9d: true,
}

// Decode converts bytes to text. UTF-8, ASCII and CP1252 are strict and
// return a *DecodeError for bytes they cannot decode. ISO-8859-1 and CP037
// assign every byte. When the name is unsupported the data is decoded as
// UTF-8 and the text is returned together with an error wrapping
// ErrUnsupportedEncoding.
func Decode(data []byte, name string) (string, error) {
	enc, lookupErr := Lookup(name)
	text, err := decode(data, enc)
	if err != nil {
		return "", err
	}
	return text, lookupErr
}

func decode(data []byte, enc Encoding) (string, error) {
	switch enc {
	case ASCII:
		for i, b := range data {
			if b >= utf8.RuneSelf {
				return "", &DecodeError{Encoding: enc, Offset: i, Byte: b, Reason: "byte not in range 0x00-0x7f"}
			}
		}
		return string(data), nil
	case CP1252, ISO88591, CP037:
		if enc == CP1252 {
			for i, b := range data {
				if cp1252Undefined[b] {
					return "", &DecodeError{Encoding: enc, Offset: i, Byte: b, Reason: "undefined in code page"}
				}
			}
		}
		decoded, _, err := transform.Bytes(enc.charmap().NewDecoder(), data)
		if err != nil {
			return "", &DecodeError{Encoding: enc, Reason: err.Error()}
		}
		return string(decoded), nil
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", &DecodeError{Encoding: enc, Offset: i, Byte: data[i], Reason: "invalid UTF-8 sequence"}
		}
		i += size
	}
	return string(data), nil
}
