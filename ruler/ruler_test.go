package ruler

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestRulerLength(t *testing.T) {
	for lineLength := 1; lineLength <= 500; lineLength++ {
		numbers, markers := Generate(lineLength)
		display := fmt.Sprintf("Generate(%d)", lineLength)
		require.Equal(t, lineLength, utf8.RuneCountInString(numbers), display)
		require.Equal(t, lineLength, utf8.RuneCountInString(markers), display)
	}
}

func TestRulerEmpty(t *testing.T) {
	for _, lineLength := range []int{0, -1, -140} {
		numbers, markers := Generate(lineLength)
		require.Equal(t, "", numbers)
		require.Equal(t, "", markers)
		numberSpans, markerSpans := GenerateStyled(lineLength)
		require.Empty(t, numberSpans)
		require.Empty(t, markerSpans)
	}
}

func TestRuler140(t *testing.T) {
	numbers, markers := Generate(140)
	m := []rune(markers)
	require.Equal(t, '|', m[9])
	require.Equal(t, '+', m[4])
	require.Equal(t, '·', m[0])
	require.Equal(t, '|', m[139])

	n := []rune(numbers)
	require.Equal(t, '1', n[0])
	require.Equal(t, "11", string(n[9:11]))
	require.Equal(t, "131", string(n[128:131]))
	require.Equal(t, ' ', n[1])
	log.Printf("\n%s\n%s\n", numbers, markers)
}

func TestRulerShort(t *testing.T) {
	numbers, markers := Generate(12)
	require.Equal(t, "1        11 ", numbers)
	require.Equal(t, "····+····|··", markers)

	numbers, _ = Generate(10)
	require.Equal(t, "1         ", numbers)

	numbers, _ = Generate(11)
	require.Equal(t, "1        11", numbers)
}

func TestPreview(t *testing.T) {
	require.Equal(t, "1    \n····+", Preview(5))
}

func TestStyledMatchesPlain(t *testing.T) {
	for _, lineLength := range []int{1, 5, 10, 40, 140, 500} {
		numbers, markers := Generate(lineLength)
		numberSpans, markerSpans := GenerateStyled(lineLength)
		require.Equal(t, numbers, Text(numberSpans))
		require.Equal(t, markers, Text(markerSpans))
	}
}

func TestStyledRoles(t *testing.T) {
	numberSpans, markerSpans := GenerateStyled(20)
	require.Equal(t, RoleNumber, numberSpans[0].Role)
	require.Equal(t, RoleRegular, numberSpans[1].Role)
	require.Equal(t, RoleFifth, numberSpans[4].Role)
	require.Equal(t, RoleNumber, numberSpans[9].Role)
	require.Equal(t, RoleNumber, numberSpans[10].Role)
	require.Equal(t, RoleTenth, numberSpans[19].Role)

	require.Equal(t, RoleRegular, markerSpans[0].Role)
	require.Equal(t, RoleFifth, markerSpans[4].Role)
	require.Equal(t, RoleTenth, markerSpans[9].Role)
}

func TestRenderHTML(t *testing.T) {
	numberSpans, markerSpans := GenerateStyled(10)
	numbers := RenderHTML(numberSpans)
	markers := RenderHTML(markerSpans)
	require.True(t, strings.HasPrefix(numbers, `<span class="ruler-number-marker">1</span><span class="ruler-regular"> </span>`))
	require.True(t, strings.HasSuffix(markers, `<span class="ruler-10th">|</span>`))
	require.Contains(t, markers, `<span class="ruler-5th">+</span>`)
	require.Equal(t, 10, strings.Count(markers, "<span "))

	escaped := RenderHTML([]Span{{Text: "<", Role: RoleRegular}})
	require.Equal(t, `<span class="ruler-regular">&lt;</span>`, escaped)
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestRenderANSI(t *testing.T) {
	numberSpans, markerSpans := GenerateStyled(40)
	numbers, markers := Generate(40)
	require.Equal(t, numbers, ansiPattern.ReplaceAllString(RenderANSI(numberSpans), ""))
	require.Equal(t, markers, ansiPattern.ReplaceAllString(RenderANSI(markerSpans), ""))
}
