package ruler

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Role string

const (
	RoleNumber  Role = "number"
	RoleTenth   Role = "every-10th"
	RoleFifth   Role = "every-5th"
	RoleRegular Role = "regular"
)

// Span is one ruler character tagged with its role.
type Span struct {
	Text string
	Role Role
}

var htmlClass = map[Role]string{
	RoleNumber:  "ruler-number-marker",
	RoleTenth:   "ruler-10th",
	RoleFifth:   "ruler-5th",
	RoleRegular: "ruler-regular",
}

var ansiStyle = map[Role]lipgloss.Style{
	RoleNumber:  lipgloss.NewStyle().Foreground(lipgloss.Color("#1f77b4")).Background(lipgloss.Color("#fff3cd")).Bold(true),
	RoleTenth:   lipgloss.NewStyle().Foreground(lipgloss.Color("#d62728")).Bold(true),
	RoleFifth:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2ca02c")).Bold(true),
	RoleRegular: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
}

func columnRole(column int) Role {
	switch {
	case column%10 == 0:
		return RoleTenth
	case column%5 == 0:
		return RoleFifth
	}
	return RoleRegular
}

// GenerateStyled returns the same rows as Generate with one Span per column.
func GenerateStyled(lineLength int) ([]Span, []Span) {
	if lineLength < 1 {
		return []Span{}, []Span{}
	}
	numberRow := numbers(lineLength)
	markerRow := markers(lineLength)
	numberSpans := make([]Span, lineLength)
	markerSpans := make([]Span, lineLength)
	for i := 0; i < lineLength; i++ {
		column := i + 1
		role := columnRole(column)
		markerSpans[i] = Span{Text: string(markerRow[i]), Role: role}
		if numberRow[i] != ' ' {
			role = RoleNumber
		}
		numberSpans[i] = Span{Text: string(numberRow[i]), Role: role}
	}
	return numberSpans, markerSpans
}

// Text concatenates the span text without styling.
func Text(spans []Span) string {
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(span.Text)
	}
	return b.String()
}

// RenderHTML wraps each span in a <span> whose class names its role.
func RenderHTML(spans []Span) string {
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(`<span class="`)
		b.WriteString(htmlClass[span.Role])
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(span.Text))
		b.WriteString(`</span>`)
	}
	return b.String()
}

// RenderANSI styles each span for a terminal. Without a colour profile the
// result is the plain text.
func RenderANSI(spans []Span) string {
	var b strings.Builder
	for _, span := range spans {
		style, ok := ansiStyle[span.Role]
		if !ok {
			b.WriteString(span.Text)
			continue
		}
		b.WriteString(style.Render(span.Text))
	}
	return b.String()
}
