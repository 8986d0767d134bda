package zipcat

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

type format string

const (
	formatText format = "text"
	formatJSON format = "json"
	formatYAML format = "yaml"
)

var formats = []format{formatText, formatJSON, formatYAML}

var _ pflag.Value = (*format)(nil)

func (f *format) Set(s string) error {
	for _, known := range formats {
		if strings.EqualFold(s, string(known)) {
			*f = known
			return nil
		}
	}
	return fmt.Errorf("unknown format %q, expected one of %v", s, formats)
}

func (f *format) Type() string {
	return "format"
}

func (f *format) String() string {
	return string(*f)
}
