// Package codec converts between text and byte sequences for the small fixed
// set of encodings hexpad supports, and renders bytes as display glyphs.
package codec

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

type Encoding string

const (
	UTF8     Encoding = "UTF-8"
	ASCII    Encoding = "ASCII"
	CP1252   Encoding = "CP1252"
	ISO88591 Encoding = "ISO-8859-1"
	CP037    Encoding = "CP037"
)

// Default is used for an empty name and as the fallback for unsupported names.
const Default = UTF8

var Encodings = []Encoding{UTF8, ASCII, CP1252, ISO88591, CP037}

var aliases = map[string]Encoding{
	"utf8":     UTF8,
	"ascii":    ASCII,
	"cp1252":   CP1252,
	"iso88591": ISO88591,
	"latin1":   ISO88591,
	"cp037":    CP037,
	"ebcdic":   CP037,
	"ibm037":   CP037,
}

var ianaNames = map[string]Encoding{
	"UTF-8":        UTF8,
	"US-ASCII":     ASCII,
	"WINDOWS-1252": CP1252,
	"ISO-8859-1":   ISO88591,
	"IBM037":       CP037,
}

func (e Encoding) String() string {
	return string(e)
}

// Description is a short human readable summary used by the encodings listing.
func (e Encoding) Description() string {
	switch e {
	case UTF8:
		return "Unicode, variable width"
	case ASCII:
		return "7-bit US-ASCII"
	case CP1252:
		return "Windows Western European"
	case ISO88591:
		return "Latin-1"
	case CP037:
		return "EBCDIC US/Canada"
	}
	return ""
}

// SingleByte reports whether every character maps to exactly one byte.
func (e Encoding) SingleByte() bool {
	return e != UTF8
}

func (e Encoding) charmap() *charmap.Charmap {
	switch e {
	case CP1252:
		return charmap.Windows1252
	case ISO88591:
		return charmap.ISO8859_1
	case CP037:
		return charmap.CodePage037
	}
	return nil
}

func normalizeName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
}

// Lookup resolves an encoding name case-insensitively. Short aliases such as
// "latin1" or "ebcdic" are accepted, as are IANA names and aliases. An
// unsupported name resolves to UTF-8 and returns an error wrapping
// ErrUnsupportedEncoding so the fallback is visible to the caller.
func Lookup(name string) (Encoding, error) {
	if strings.TrimSpace(name) == "" {
		return Default, nil
	}
	if enc, ok := aliases[normalizeName(name)]; ok {
		return enc, nil
	}
	e, err := ianaindex.IANA.Encoding(strings.TrimSpace(name))
	if err == nil && e != nil {
		canonical, err := ianaindex.IANA.Name(e)
		if err == nil {
			if enc, ok := ianaNames[strings.ToUpper(canonical)]; ok {
				return enc, nil
			}
		}
	}
	return Default, fmt.Errorf("%w: '%s', using %s", ErrUnsupportedEncoding, name, Default)
}
