// Package hexdump renders bytes as offset / hex / gutter lines and parses
// those lines back into hex digits.
package hexdump

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rstms/hexpad/codec"
)

const DefaultBytesPerLine = 16

// OffsetWidth is the width of the left-justified decimal offset field.
const OffsetWidth = 8

const groupSize = 4

var ErrBytesPerLine = errors.New("bytes per line must be 8, 16 or 32")

// ValidateWidth checks a bytes-per-line setting.
func ValidateWidth(bytesPerLine int) error {
	switch bytesPerLine {
	case 8, 16, 32:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrBytesPerLine, bytesPerLine)
}

// ToHexdump encodes text with the named encoding and dumps the result. The
// encode result is returned so callers can report substitutions.
func ToHexdump(text, encoding string, bytesPerLine int) (string, *codec.Result) {
	result := codec.Encode(text, encoding)
	return Dump(result.Bytes, result.Encoding, bytesPerLine), result
}

// Dump formats data with bytesPerLine bytes per line. The gutter uses the
// display glyphs of enc. Non-positive widths use DefaultBytesPerLine.
func Dump(data []byte, enc codec.Encoding, bytesPerLine int) string {
	if bytesPerLine <= 0 {
		bytesPerLine = DefaultBytesPerLine
	}
	var output strings.Builder
	for offset := 0; offset < len(data); offset += bytesPerLine {
		end := offset + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		line := data[offset:end]
		output.WriteString(fmt.Sprintf("%-*d  %s  |%s|\n", OffsetWidth, offset, hexSection(line, bytesPerLine), gutter(line, enc, bytesPerLine)))
	}
	return output.String()
}

// HexWidth is the constant width of the hex section for a line width.
func HexWidth(bytesPerLine int) int {
	groups := (bytesPerLine + groupSize - 1) / groupSize
	return 3*bytesPerLine - 1 + groups - 1
}

func hexSection(line []byte, bytesPerLine int) string {
	var section strings.Builder
	for j := 0; j < bytesPerLine; j++ {
		if j > 0 {
			section.WriteByte(' ')
			if j%groupSize == 0 {
				section.WriteByte(' ')
			}
		}
		if j < len(line) {
			section.WriteString(fmt.Sprintf("%02x", line[j]))
		} else {
			section.WriteString("  ")
		}
	}
	return section.String()
}

func gutter(line []byte, enc codec.Encoding, bytesPerLine int) string {
	buf := make([]rune, bytesPerLine)
	for j := 0; j < bytesPerLine; j++ {
		if j < len(line) {
			buf[j] = codec.DisplayByte(line[j], enc)
		} else {
			buf[j] = ' '
		}
	}
	return string(buf)
}
