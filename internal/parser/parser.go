// Package parser encodes and decodes the document file format: a YAML
// frontmatter metadata header between --- delimiters, followed by the
// free-form Markdown body.
package parser

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Meta is the structured metadata header of a document file.
// Timestamps travel as strings so that files written by other tools
// (ISO-8601 without a zone, date-only) still load.
type Meta struct {
	ID       int      `yaml:"id"`
	Title    string   `yaml:"title"`
	Tags     []string `yaml:"tags"`
	Created  string   `yaml:"created"`
	Modified string   `yaml:"modified"`
}

// timeLayouts are tried in order when parsing a metadata timestamp.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime parses a metadata timestamp. The zero time is returned for
// an empty or unrecognised value; callers backfill it.
func ParseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatTime renders a timestamp for the metadata header.
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// Split separates the metadata header from the body. When no header is
// present the whole input is body and meta is nil. A header that is
// present but not valid YAML is an error: the caller must not silently
// treat structured metadata as prose.
func Split(data []byte) (*Meta, string, error) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, string(data), nil
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		// Opening delimiter without a closing one: treat as body.
		return nil, string(data), nil
	}

	yamlBlock := rest[:idx]
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var m Meta
	if err := yaml.Unmarshal(yamlBlock, &m); err != nil {
		return nil, "", fmt.Errorf("parser: decode metadata: %w", err)
	}
	return &m, body, nil
}

// Compose renders a metadata header plus body into the persisted file
// form. The body is appended byte-for-byte after the closing delimiter.
func Compose(m Meta, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&m); err != nil {
		return nil, fmt.Errorf("parser: encode metadata: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("parser: encode metadata: %w", err)
	}

	buf.WriteString("---\n")
	buf.WriteString(body)
	return buf.Bytes(), nil
}
