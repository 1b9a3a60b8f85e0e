package hexdump

import (
	"strings"

	"github.com/rstms/hexpad/codec"
)

// Parse recovers the hex digits of a dump. The offset field and the gutter
// are dropped; the gutter starts at the first '|' since neither the offset
// nor the hex section can contain one.
func Parse(dump string) string {
	var digits strings.Builder
	for _, line := range strings.Split(dump, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if i := strings.Index(line, "|"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		for _, field := range fields[1:] {
			digits.WriteString(field)
		}
	}
	return digits.String()
}

// ParseBytes parses a dump into the bytes it shows.
func ParseBytes(dump string) ([]byte, error) {
	return codec.DecodeHex(Parse(dump))
}
