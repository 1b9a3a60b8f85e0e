// Package report lays out analysed text line by line under position rulers
// with the hex value of every column, and assembles the export document.
package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rstms/hexpad/codec"
	"github.com/rstms/hexpad/glyph"
	"github.com/rstms/hexpad/ruler"
)

// MaxLines is the number of input lines analysed; later lines are dropped.
const MaxLines = 9999

const DefaultLineLength = 140

const labelWidth = 10

type Options struct {
	LineLength int
	Encoding   string
}

// Block is the analysis of one input line.
type Block struct {
	Number  int
	Text    string
	Numbers string
	Markers string
	HexHigh string
	HexLow  string
}

type Analysis struct {
	Encoding        codec.Encoding
	Requested       string
	Fallback        bool
	LineLength      int
	TotalCharacters int
	TotalLines      int
	Truncated       bool
	Replaced        int
	Blocks          []Block
}

// Lossless reports whether every column shows the exact byte of its
// character in the requested encoding.
func (a *Analysis) Lossless() bool {
	return !a.Fallback && a.Replaced == 0
}

func label(text string) string {
	return fmt.Sprintf("%-*s", labelWidth, text)
}

// Lines returns the labelled rows of the block.
func (b *Block) Lines() []string {
	return []string{
		label("Pos:") + b.Numbers,
		label("Cols:") + b.Markers,
		label(fmt.Sprintf("Line %d:", b.Number)) + b.Text,
		label("Hex H:") + b.HexHigh,
		label("Hex L:") + b.HexLow,
	}
}

func (b *Block) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Fit truncates or space-pads s to exactly width runes.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	count := utf8.RuneCountInString(s)
	if count > width {
		return string([]rune(s)[:width])
	}
	return s + strings.Repeat(" ", width-count)
}

// HexRows returns the high and low hex digit of each character of line. For
// single-byte encodings the digits are those of the encoded byte. Under UTF-8
// characters above U+00FF have no single byte and show '?' in both rows. The
// count of such substituted columns is returned.
func HexRows(line string, enc codec.Encoding) (string, string, int) {
	var high, low strings.Builder
	replaced := 0
	if enc.SingleByte() {
		result := codec.Encode(line, enc.String())
		for _, b := range result.Bytes {
			pair := fmt.Sprintf("%02X", b)
			high.WriteByte(pair[0])
			low.WriteByte(pair[1])
		}
		return high.String(), low.String(), result.Replaced
	}
	for _, r := range line {
		if r > 0xff {
			high.WriteByte('?')
			low.WriteByte('?')
			replaced++
			continue
		}
		pair := fmt.Sprintf("%02X", r)
		high.WriteByte(pair[0])
		low.WriteByte(pair[1])
	}
	return high.String(), low.String(), replaced
}

func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Analyze builds one Block per line of text, at most MaxLines.
func Analyze(text string, options Options) *Analysis {
	enc, err := codec.Lookup(options.Encoding)
	lineLength := options.LineLength
	if lineLength <= 0 {
		lineLength = DefaultLineLength
	}
	analysis := Analysis{
		Encoding:        enc,
		Requested:       options.Encoding,
		Fallback:        err != nil,
		LineLength:      lineLength,
		TotalCharacters: utf8.RuneCountInString(text),
	}

	visible := splitLines(glyph.Visualize(text))
	raw := strings.Split(text, "\n")
	analysis.TotalLines = len(visible)
	if len(visible) > MaxLines {
		visible = visible[:MaxLines]
		analysis.Truncated = true
	}

	numbers, markers := ruler.Generate(lineLength)
	analysis.Blocks = make([]Block, len(visible))
	for i, line := range visible {
		high, low, replaced := HexRows(raw[i], enc)
		analysis.Replaced += replaced
		analysis.Blocks[i] = Block{
			Number:  i + 1,
			Text:    Fit(line, lineLength),
			Numbers: numbers,
			Markers: markers,
			HexHigh: Fit(high, lineLength),
			HexLow:  Fit(low, lineLength),
		}
	}
	return &analysis
}

// Filename is the suggested name for the saved document.
func Filename(enc codec.Encoding) string {
	return fmt.Sprintf("text_analysis_%s.txt", strings.ToLower(enc.String()))
}
