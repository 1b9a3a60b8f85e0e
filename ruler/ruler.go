// Package ruler builds the column position rulers shown above analysed text.
package ruler

import (
	"strconv"
)

const (
	TenthMarker   = '|'
	FifthMarker   = '+'
	RegularMarker = '·'
)

// Every is the spacing of the numbered columns 1, 11, 21, ...
const Every = 10

// Generate returns the numbers and markers rows for lineLength columns. Both
// rows are exactly lineLength runes long; a lineLength below 1 yields empty
// strings.
func Generate(lineLength int) (string, string) {
	if lineLength < 1 {
		return "", ""
	}
	return string(numbers(lineLength)), string(markers(lineLength))
}

// Preview is the two ruler rows joined by a newline.
func Preview(lineLength int) string {
	numbers, markers := Generate(lineLength)
	return numbers + "\n" + markers
}

func marker(column int) rune {
	switch {
	case column%10 == 0:
		return TenthMarker
	case column%5 == 0:
		return FifthMarker
	}
	return RegularMarker
}

func markers(lineLength int) []rune {
	row := make([]rune, lineLength)
	for i := range row {
		row[i] = marker(i + 1)
	}
	return row
}

// numbers writes each label right-aligned so its last digit sits under the
// labelled column.
func numbers(lineLength int) []rune {
	row := make([]rune, lineLength)
	for i := range row {
		row[i] = ' '
	}
	for column := 1; column <= lineLength; column += Every {
		label := strconv.Itoa(column)
		start := column - len(label)
		for i, c := range label {
			pos := start + i
			if pos >= 0 && pos < lineLength {
				row[pos] = c
			}
		}
	}
	return row
}
