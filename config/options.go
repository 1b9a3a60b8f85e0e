package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/rstms/hexpad/codec"
	"github.com/rstms/hexpad/hexdump"
)

const (
	MinLineLength       = 40
	MaxLineLength       = 500
	DefaultLineLength   = 140
	DefaultBytesPerLine = hexdump.DefaultBytesPerLine
	DefaultEncoding     = string(codec.UTF8)
)

var ErrLineLength = fmt.Errorf("line length must be between %d and %d", MinLineLength, MaxLineLength)

// ErrBytesPerLine is the hexdump width error.
var ErrBytesPerLine = hexdump.ErrBytesPerLine

type Options struct {
	LineLength   int
	BytesPerLine int
	Encoding     codec.Encoding
	// Requested is the encoding name as configured, before lookup.
	Requested string
	// Warning is set when the requested encoding fell back to UTF-8.
	Warning error
}

// Load reads and validates the conversion settings. An unsupported encoding
// is not fatal: Encoding falls back to UTF-8 and Warning holds the reason.
func Load() (*Options, error) {
	options := Options{
		LineLength:   ViperGetInt("line_length"),
		BytesPerLine: ViperGetInt("bytes_per_line"),
		Requested:    ViperGetString("encoding"),
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	enc, err := codec.Lookup(options.Requested)
	if err != nil {
		if !errors.Is(err, codec.ErrUnsupportedEncoding) {
			return nil, err
		}
		options.Warning = err
	}
	options.Encoding = enc
	if ViperGetBool("verbose") {
		log.Printf("options: line_length=%d bytes_per_line=%d encoding=%s\n", options.LineLength, options.BytesPerLine, options.Encoding)
	}
	return &options, nil
}

func (o *Options) Validate() error {
	if o.LineLength < MinLineLength || o.LineLength > MaxLineLength {
		return fmt.Errorf("%w: %d", ErrLineLength, o.LineLength)
	}
	return hexdump.ValidateWidth(o.BytesPerLine)
}
