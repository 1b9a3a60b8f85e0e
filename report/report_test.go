package report

import (
	"log"
	"strings"
	"testing"

	"github.com/rstms/hexpad/codec"
	"github.com/rstms/hexpad/ruler"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	require.Equal(t, "abc  ", Fit("abc", 5))
	require.Equal(t, "ab", Fit("abc", 2))
	require.Equal(t, "¶·", Fit("¶·→", 2))
	require.Equal(t, "", Fit("abc", 0))
}

func TestHexRows(t *testing.T) {
	high, low, replaced := HexRows("AZ 0", codec.ASCII)
	require.Equal(t, "4523", high)
	require.Equal(t, "1A00", low)
	require.Equal(t, 0, replaced)

	high, low, replaced = HexRows("AZ 0", codec.CP037)
	require.Equal(t, "CE4F", high)
	require.Equal(t, "1900", low)
	require.Equal(t, 0, replaced)

	high, low, replaced = HexRows("é€", codec.UTF8)
	require.Equal(t, "E?", high)
	require.Equal(t, "9?", low)
	require.Equal(t, 1, replaced)

	high, low, replaced = HexRows("é€", codec.CP1252)
	require.Equal(t, "E8", high)
	require.Equal(t, "90", low)
	require.Equal(t, 0, replaced)

	high, _, replaced = HexRows("€", codec.ISO88591)
	require.Equal(t, "3", high)
	require.Equal(t, 1, replaced)
}

func TestAnalyzeBlock(t *testing.T) {
	analysis := Analyze("a\tb c\nxyz\n", Options{LineLength: 40, Encoding: "ascii"})
	require.True(t, analysis.Lossless())
	require.Equal(t, codec.ASCII, analysis.Encoding)
	require.Len(t, analysis.Blocks, 2)
	require.Equal(t, 10, analysis.TotalCharacters)

	block := analysis.Blocks[0]
	require.Equal(t, 1, block.Number)
	require.Equal(t, Fit("a→b·c¶", 40), block.Text)
	require.Equal(t, Fit("60626", 40), block.HexHigh)
	require.Equal(t, Fit("19203", 40), block.HexLow)

	lines := block.Lines()
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[0], "Pos:      1"+strings.Repeat(" ", 8)+"11"))
	require.True(t, strings.HasPrefix(lines[1], "Cols:     ····+····|"))
	require.True(t, strings.HasPrefix(lines[2], "Line 1:   a→b·c¶"))
	require.True(t, strings.HasPrefix(lines[3], "Hex H:    60626"))
	require.True(t, strings.HasPrefix(lines[4], "Hex L:    19203"))

	require.Equal(t, "Line 2:   xyz¶", strings.TrimRight(analysis.Blocks[1].Lines()[2], " "))
	log.Printf("\n%s\n", block.String())
}

func TestAnalyzeTruncates(t *testing.T) {
	text := strings.Repeat("x\n", MaxLines+5)
	analysis := Analyze(text, Options{LineLength: 40})
	require.True(t, analysis.Truncated)
	require.Equal(t, MaxLines+5, analysis.TotalLines)
	require.Len(t, analysis.Blocks, MaxLines)
	require.Equal(t, MaxLines, analysis.Blocks[MaxLines-1].Number)
	require.Contains(t, analysis.Document(), "NOTE: Analysis limited to first 9999 lines")
	require.Equal(t, "Line 9999:x¶", strings.TrimRight(analysis.Blocks[MaxLines-1].Lines()[2], " "))
}

func TestAnalyzeEmpty(t *testing.T) {
	analysis := Analyze("", Options{})
	require.Empty(t, analysis.Blocks)
	require.Equal(t, DefaultLineLength, analysis.LineLength)
	require.Equal(t, codec.UTF8, analysis.Encoding)
}

func TestAnalyzeLongLine(t *testing.T) {
	analysis := Analyze(strings.Repeat("0123456789", 6), Options{LineLength: 40})
	require.Len(t, analysis.Blocks, 1)
	require.Equal(t, strings.Repeat("0123456789", 4), analysis.Blocks[0].Text)
	require.Equal(t, strings.Repeat("3", 40), analysis.Blocks[0].HexHigh)
}

func TestDocument(t *testing.T) {
	analysis := Analyze("Hi\r\n", Options{LineLength: 40, Encoding: "ebcdic"})
	document := analysis.Document()
	log.Printf("\n%s\n", document)
	lines := strings.Split(document, "\n")
	require.Equal(t, "=== TEXT ANALYZER REPORT ===", lines[0])
	require.Equal(t, "Encoding Mode: CP037", lines[1])
	require.Equal(t, "Line Length: 40", lines[2])
	require.Equal(t, "Total Lines Analyzed: 1", lines[3])
	require.Equal(t, "Total Characters: 4", lines[4])
	require.Equal(t, "", lines[5])
	require.Equal(t, "", lines[6])
	require.Equal(t, "LEGEND:", lines[7])
	require.Contains(t, document, "=== ANALYSIS OUTPUT ===\n\n=== Line 1 Analysis ===\nPos:      1  ")
	require.Contains(t, document, "Line 1:   Hi↴¶")
	require.Contains(t, document, "Hex H:    C80")
	require.Contains(t, document, "Hex L:    89D")
	require.True(t, strings.HasSuffix(document, "\n"))
}

func TestDocumentNotes(t *testing.T) {
	analysis := Analyze("€", Options{LineLength: 40, Encoding: "ascii"})
	require.False(t, analysis.Lossless())
	require.Contains(t, analysis.Document(), "NOTE: 1 characters not representable in ASCII were substituted")

	analysis = Analyze("x", Options{LineLength: 40, Encoding: "klingon"})
	require.True(t, analysis.Fallback)
	require.Contains(t, analysis.Document(), "NOTE: Encoding 'klingon' is not supported, UTF-8 was used")
}

func TestFilename(t *testing.T) {
	require.Equal(t, "text_analysis_cp037.txt", Filename(codec.CP037))
	require.Equal(t, "text_analysis_utf-8.txt", Filename(codec.UTF8))
}

func TestRender(t *testing.T) {
	analysis := Analyze("ab\ncd", Options{LineLength: 40})
	require.Equal(t, analysis.Document(), analysis.Render(ruler.Text))
	marked := analysis.Render(func(spans []ruler.Span) string {
		return "<" + ruler.Text(spans) + ">"
	})
	require.Equal(t, 2, strings.Count(marked, "Pos:      <1 "))
	require.Equal(t, 2, strings.Count(marked, "Cols:     <····+"))
	require.Contains(t, marked, "Line 2:   cd")
}
