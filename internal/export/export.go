// Package export projects a document set into external serializations:
// JSON, plain text, or HTML via an injected Markdown converter. Export
// reads the corpus and never mutates it.
package export

import (
	"fmt"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/halvard/ansuz/internal/apperr"
	"github.com/halvard/ansuz/internal/models"
)

// Format selects the output serialization.
type Format string

// Supported export formats.
const (
	FormatJSON Format = "json"
	FormatText Format = "txt"
	FormatHTML Format = "html"
)

// Converter renders a Markdown body to HTML. It is an injected
// collaborator; the pipeline never interprets Markdown itself.
type Converter interface {
	Convert(markdown []byte) ([]byte, error)
}

// Options parameterise an export run. SingleFile writes one aggregate
// file at the output path; otherwise the path is a directory receiving
// one file per document.
type Options struct {
	Format     Format
	SingleFile bool
}

// Validate rejects unknown formats before any I/O happens.
func (o Options) Validate() error {
	if err := validation.ValidateStruct(&o,
		validation.Field(&o.Format, validation.Required, validation.In(FormatJSON, FormatText, FormatHTML)),
	); err != nil {
		return fmt.Errorf("export: format %q: %w", o.Format, apperr.ErrUnsupportedFormat)
	}
	return nil
}

// Pipeline writes export output. The converter may be nil when HTML is
// never requested.
type Pipeline struct {
	conv Converter
}

// NewPipeline creates a Pipeline with the given HTML converter.
func NewPipeline(conv Converter) *Pipeline {
	return &Pipeline{conv: conv}
}

// Export writes the documents to outputPath in the requested format.
// An empty document set is apperr.ErrNotFound: exporting nothing is a
// caller mistake, not an empty success.
func (p *Pipeline) Export(docs []models.Document, outputPath string, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("export: no documents: %w", apperr.ErrNotFound)
	}

	switch opts.Format {
	case FormatJSON:
		return p.exportJSON(docs, outputPath, opts.SingleFile)
	case FormatText:
		return p.exportText(docs, outputPath, opts.SingleFile)
	case FormatHTML:
		return p.exportHTML(docs, outputPath, opts.SingleFile)
	}
	return fmt.Errorf("export: format %q: %w", opts.Format, apperr.ErrUnsupportedFormat)
}

// stem strips the document extension from a location, for deriving
// per-document output file names.
func stem(location string) string {
	return location[:len(location)-len(filepath.Ext(location))]
}
