package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/halvard/ansuz/internal/models"
	"github.com/halvard/ansuz/internal/parser"
)

var (
	textSeparator = strings.Repeat("-", 80)
	textDivider   = strings.Repeat("=", 80)
)

// renderText renders one document as a metadata block, a separator, and
// the raw body.
func renderText(d models.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", d.Title)
	fmt.Fprintf(&b, "ID: %d\n", d.ID)
	if len(d.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(d.Tags, ", "))
	}
	fmt.Fprintf(&b, "Created: %s\n", parser.FormatTime(d.Created))
	fmt.Fprintf(&b, "Modified: %s\n", parser.FormatTime(d.Modified))
	b.WriteString("\n" + textSeparator + "\n\n")
	b.WriteString(d.Body)
	return b.String()
}

func (p *Pipeline) exportText(docs []models.Document, outputPath string, singleFile bool) error {
	if singleFile {
		var b strings.Builder
		for i, d := range docs {
			if i > 0 {
				b.WriteString("\n\n" + textDivider + "\n\n")
			}
			b.WriteString(renderText(d))
		}
		return writeFile(outputPath, []byte(b.String()))
	}

	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", outputPath, err)
	}
	for _, d := range docs {
		name := stem(d.Location) + ".txt"
		if err := writeFile(filepath.Join(outputPath, name), []byte(renderText(d))); err != nil {
			return err
		}
	}
	return nil
}
