package report

import (
	"fmt"
	"strings"

	"github.com/rstms/hexpad/ruler"
)

var legend = []string{
	"LEGEND:",
	"Position Ruler: · = regular | + = every 5th | | = every 10th",
	"Numbers show column positions (1-based indexing)",
	"Special chars: · = Space | → = Tab | ¶ = Newline | ↴ = CR",
	"Actual periods remain as '.' - Hex value 2E",
	fmt.Sprintf("Line numbers supported up to Line %d:", MaxLines),
}

// Header returns the document lines preceding the line blocks.
func (a *Analysis) Header() []string {
	lines := []string{
		"=== TEXT ANALYZER REPORT ===",
		fmt.Sprintf("Encoding Mode: %s", a.Encoding),
		fmt.Sprintf("Line Length: %d", a.LineLength),
		fmt.Sprintf("Total Lines Analyzed: %d", len(a.Blocks)),
		fmt.Sprintf("Total Characters: %d", a.TotalCharacters),
	}
	if a.Truncated {
		lines = append(lines, fmt.Sprintf("NOTE: Analysis limited to first %d lines", MaxLines))
	} else {
		lines = append(lines, "")
	}
	if a.Fallback {
		lines = append(lines, fmt.Sprintf("NOTE: Encoding '%s' is not supported, %s was used", a.Requested, a.Encoding))
	}
	if a.Replaced > 0 {
		lines = append(lines, fmt.Sprintf("NOTE: %d characters not representable in %s were substituted", a.Replaced, a.Encoding))
	}
	lines = append(lines, "")
	lines = append(lines, legend...)
	lines = append(lines, "", "=== ANALYSIS OUTPUT ===", "")
	return lines
}

// Document is the plain text export of the whole analysis.
func (a *Analysis) Document() string {
	return a.Render(ruler.Text)
}

// Render assembles the document with the ruler rows of every block drawn by
// render, e.g. ruler.RenderANSI for a terminal.
func (a *Analysis) Render(render func([]ruler.Span) string) string {
	numbers, markers := ruler.GenerateStyled(a.LineLength)
	pos := label("Pos:") + render(numbers)
	cols := label("Cols:") + render(markers)
	lines := a.Header()
	for i := range a.Blocks {
		block := &a.Blocks[i]
		rows := block.Lines()
		rows[0], rows[1] = pos, cols
		lines = append(lines, fmt.Sprintf("=== Line %d Analysis ===", block.Number))
		lines = append(lines, rows...)
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
