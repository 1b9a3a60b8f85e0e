package codec

import (
	"unicode/utf8"
)

// Result is the outcome of encoding text. Replaced counts characters that
// were substituted with the replacement byte and Fallback is set when the
// requested encoding was not supported and UTF-8 was used instead.
type Result struct {
	Bytes     []byte
	Encoding  Encoding
	Requested string
	Fallback  bool
	Replaced  int
}

// Lossless reports whether the bytes represent the text exactly in the
// requested encoding.
func (r *Result) Lossless() bool {
	return !r.Fallback && r.Replaced == 0
}

// Encode converts text to bytes on a best effort basis. Characters the
// encoding cannot represent become '?' in that encoding and are counted in
// Result.Replaced.
func Encode(text, name string) *Result {
	enc, err := Lookup(name)
	result := Result{
		Encoding:  enc,
		Requested: name,
		Fallback:  err != nil,
	}
	result.Bytes, result.Replaced, _ = encode(text, enc, false)
	return &result
}

// EncodeStrict is Encode without substitution: an unsupported encoding name
// or an unrepresentable character is an error.
func EncodeStrict(text, name string) (*Result, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	data, _, err := encode(text, enc, true)
	if err != nil {
		return nil, err
	}
	return &Result{Bytes: data, Encoding: enc, Requested: name}, nil
}

// EncodeRune returns the byte sequence for one character, or false when the
// encoding has no representation for it.
func EncodeRune(r rune, enc Encoding) ([]byte, bool) {
	switch enc {
	case ASCII:
		if r < utf8.RuneSelf {
			return []byte{byte(r)}, true
		}
		return nil, false
	case CP1252, ISO88591, CP037:
		b, ok := enc.charmap().EncodeRune(r)
		if !ok {
			return nil, false
		}
		return []byte{b}, true
	}
	if !utf8.ValidRune(r) {
		return nil, false
	}
	return utf8.AppendRune(nil, r), true
}

func replacementByte(enc Encoding) byte {
	if cm := enc.charmap(); cm != nil {
		if b, ok := cm.EncodeRune('?'); ok {
			return b
		}
	}
	return '?'
}

func encode(text string, enc Encoding, strict bool) ([]byte, int, error) {
	out := make([]byte, 0, len(text))
	replaced := 0
	position := 0
	for i, r := range text {
		var encoded []byte
		ok := false
		if r == utf8.RuneError {
			// a literal U+FFFD is three bytes wide, an invalid byte is one
			if _, size := utf8.DecodeRuneInString(text[i:]); size > 1 {
				encoded, ok = EncodeRune(r, enc)
			}
		} else {
			encoded, ok = EncodeRune(r, enc)
		}
		if !ok {
			if strict {
				return nil, replaced, &EncodeError{Encoding: enc, Position: position, Rune: r}
			}
			encoded = []byte{replacementByte(enc)}
			replaced++
		}
		out = append(out, encoded...)
		position++
	}
	return out, replaced, nil
}
