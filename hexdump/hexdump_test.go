package hexdump

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/rstms/hexpad/codec"
	"github.com/stretchr/testify/require"
)

func TestHelloWorld(t *testing.T) {
	dump, result := ToHexdump("Hello World", "UTF-8", 16)
	require.True(t, result.Lossless())
	log.Printf("\n%s", dump)

	lines := strings.Split(strings.TrimSuffix(dump, "\n"), "\n")
	require.Len(t, lines, 1)

	hex := "48 65 6c 6c  6f 20 57 6f  72 6c 64" + strings.Repeat(" ", 3*5+1)
	expected := "0         " + hex + "  |Hello World     |"
	require.Equal(t, expected, lines[0])
	require.Equal(t, 50, len(hex))
	require.Equal(t, 50, HexWidth(16))
}

func TestConstantWidth(t *testing.T) {
	for _, width := range []int{8, 16, 32} {
		data := make([]byte, 2*width+3)
		for i := range data {
			data[i] = byte(i)
		}
		dump := Dump(data, codec.UTF8, width)
		lines := strings.Split(strings.TrimSuffix(dump, "\n"), "\n")
		require.Len(t, lines, 3)
		for _, line := range lines {
			require.Equal(t, len([]rune(lines[0])), len([]rune(line)), line)
			require.Equal(t, OffsetWidth+2+HexWidth(width)+2+width+2, len([]rune(line)))
		}
		require.True(t, strings.HasPrefix(lines[1], fmt.Sprintf("%-8d", width)))
		require.True(t, strings.HasPrefix(lines[2], fmt.Sprintf("%-8d", 2*width)))
	}
}

func TestRoundTrip(t *testing.T) {
	for _, size := range []int{0, 1, 15, 16, 17, 33} {
		s := strings.Repeat("abcdefghijklmnopqrstuvwxyz", 2)[:size]
		dump, result := ToHexdump(s, "UTF-8", 16)
		display := fmt.Sprintf("size=%d", size)
		require.Equal(t, codec.EncodeHex(result.Bytes), Parse(dump), display)
		require.Equal(t, codec.EncodeHex([]byte(s)), Parse(dump), display)
		log.Println(display)
	}
}

func TestRoundTripGutterPipes(t *testing.T) {
	s := "a|b||c| \t\n|"
	for _, width := range []int{8, 16, 32} {
		dump := Dump([]byte(s), codec.ASCII, width)
		data, err := ParseBytes(dump)
		require.Nil(t, err)
		require.Equal(t, []byte(s), data)
	}
}

func TestEBCDICGutter(t *testing.T) {
	dump, result := ToHexdump("AB 12", "cp037", 8)
	require.True(t, result.Lossless())
	require.Equal(t, "c1c240f1f2", Parse(dump))
	require.True(t, strings.HasSuffix(dump, "|AB 12   |\n"))
	require.Contains(t, dump, "c1 c2 40 f1  f2")
}

func TestUnmappedGutter(t *testing.T) {
	dump := Dump([]byte{0x00, 0x0a, 0xc1}, codec.CP037, 8)
	require.True(t, strings.HasSuffix(dump, "|..A     |\n"))
}

func TestEmpty(t *testing.T) {
	dump, _ := ToHexdump("", "UTF-8", 16)
	require.Equal(t, "", dump)
	require.Equal(t, "", Parse(dump))
}

func TestIdempotent(t *testing.T) {
	text := "The quick brown fox\tjumps over the lazy dog\n"
	first, _ := ToHexdump(text, "cp1252", 32)
	second, _ := ToHexdump(text, "cp1252", 32)
	require.Equal(t, first, second)
}

func TestConcurrentCalls(t *testing.T) {
	text := strings.Repeat("concurrent ", 20)
	expected, _ := ToHexdump(text, "UTF-8", 16)
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = ToHexdump(text, "UTF-8", 16)
		}(i)
	}
	wg.Wait()
	for _, result := range results {
		require.Equal(t, expected, result)
	}
}

func TestParseIgnoresBlankLines(t *testing.T) {
	dump, _ := ToHexdump("0123456789abcdefXYZ", "ascii", 16)
	padded := "\n\n" + strings.ReplaceAll(dump, "\n", "\r\n\n")
	require.Equal(t, Parse(dump), Parse(padded))
}

func TestValidateWidth(t *testing.T) {
	require.Nil(t, ValidateWidth(8))
	require.Nil(t, ValidateWidth(16))
	require.Nil(t, ValidateWidth(32))
	err := ValidateWidth(12)
	require.NotNil(t, err)
	require.True(t, errors.Is(err, ErrBytesPerLine))
	require.Equal(t, Dump([]byte("x"), codec.UTF8, 16), Dump([]byte("x"), codec.UTF8, 0))
}
