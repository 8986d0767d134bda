package zipcat

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

type record struct {
	Line   int      `json:"line" yaml:"line"`
	Fields []string `json:"fields" yaml:"fields"`
}

type document struct {
	Files []string `yaml:"files,omitempty"`
	Rows  []record `yaml:"rows"`
}

type rowWriter interface {
	Header(names []string) error
	Row(r record) error
	Flush() error
}

func newRowWriter(w io.Writer, f format, sep string) rowWriter {
	switch f {
	case formatJSON:
		return &jsonWriter{enc: json.NewEncoder(w)}
	case formatYAML:
		return &yamlWriter{w: w}
	default:
		return &textWriter{w: w, sep: sep}
	}
}

type textWriter struct {
	w   io.Writer
	sep string
}

func (t *textWriter) Header(names []string) error {
	_, err := fmt.Fprintln(t.w, strings.Join(names, t.sep))
	return err
}

func (t *textWriter) Row(r record) error {
	_, err := fmt.Fprintln(t.w, strings.Join(r.Fields, t.sep))
	return err
}

func (t *textWriter) Flush() error { return nil }

type jsonWriter struct {
	enc *json.Encoder
}

func (j *jsonWriter) Header(names []string) error {
	return j.enc.Encode(map[string][]string{"files": names})
}

func (j *jsonWriter) Row(r record) error {
	return j.enc.Encode(r)
}

func (j *jsonWriter) Flush() error { return nil }

// yamlWriter buffers rows and emits a single document on Flush.
type yamlWriter struct {
	w   io.Writer
	doc document
}

func (y *yamlWriter) Header(names []string) error {
	y.doc.Files = names
	return nil
}

func (y *yamlWriter) Row(r record) error {
	y.doc.Rows = append(y.doc.Rows, r)
	return nil
}

func (y *yamlWriter) Flush() error {
	b, err := yaml.Marshal(y.doc)
	if err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	_, err = y.w.Write(b)
	return err
}
