// Package glyph replaces invisible characters with visible symbols.
package glyph

import (
	"strings"
)

const (
	Tab            = '→'
	Space          = '·'
	Newline        = '¶'
	CarriageReturn = '↴'

	controlPictures = 0x2400
)

// Legend describes the substitutions made by Visualize.
var Legend = []string{
	"· = Space character",
	"→ = Tab character",
	"¶ = Newline character",
	"↴ = Carriage return",
	"Control chars shown as Unicode symbols",
}

// Visualize maps each control character and space to a visible glyph. A
// newline becomes the pilcrow followed by the newline itself; every other
// character is kept.
func Visualize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t':
			b.WriteRune(Tab)
		case r == ' ':
			b.WriteRune(Space)
		case r == '\n':
			b.WriteRune(Newline)
			b.WriteByte('\n')
		case r == '\r':
			b.WriteRune(CarriageReturn)
		case r < 0x20:
			b.WriteRune(controlPictures + r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
