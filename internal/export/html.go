package export

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/halvard/ansuz/internal/apperr"
	"github.com/halvard/ansuz/internal/models"
	"github.com/halvard/ansuz/internal/parser"
)

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body {
  font-family: -apple-system, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  max-width: 800px;
  margin: 0 auto;
  padding: 2rem;
  line-height: 1.6;
  color: #333;
}
.document { margin-bottom: 3rem; padding-bottom: 2rem; border-bottom: 1px solid #eee; }
.document:last-child { border-bottom: none; }
.metadata { background: #f5f5f5; padding: 1rem; border-radius: 4px; margin-bottom: 1rem; font-size: 0.9rem; }
.metadata dt { font-weight: bold; display: inline; }
.metadata dd { display: inline; margin: 0 0 0.5rem 0; }
.tag { display: inline-block; background: #007bff; color: white; padding: 0.2rem 0.6rem; border-radius: 3px; font-size: 0.85rem; margin-right: 0.3rem; }
h1 { color: #2c3e50; }
code { background: #f5f5f5; padding: 0.2rem 0.4rem; border-radius: 3px; font-family: monospace; }
pre { background: #f5f5f5; padding: 1rem; border-radius: 4px; overflow-x: auto; }
pre code { background: none; padding: 0; }
</style>
</head>
<body>
%s
</body>
</html>
`

// renderHTML wraps one document in a metadata panel plus the converted
// body. Everything caller-controlled is escaped before it reaches the
// markup.
func (p *Pipeline) renderHTML(d models.Document) (string, error) {
	if p.conv == nil {
		return "", fmt.Errorf("export: no HTML converter configured: %w", apperr.ErrUnsupportedFormat)
	}
	body, err := p.conv.Convert([]byte(d.Body))
	if err != nil {
		return "", fmt.Errorf("export: convert %s: %w", d.Location, err)
	}

	var b strings.Builder
	b.WriteString(`<div class="document">`)
	fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(d.Title))
	b.WriteString(`<dl class="metadata">`)
	fmt.Fprintf(&b, "<dt>ID:</dt> <dd>%d</dd><br>", d.ID)
	if len(d.Tags) > 0 {
		b.WriteString("<dt>Tags:</dt> <dd>")
		for _, t := range d.Tags {
			fmt.Fprintf(&b, `<span class="tag">%s</span>`, html.EscapeString(t))
		}
		b.WriteString("</dd><br>")
	}
	fmt.Fprintf(&b, "<dt>Created:</dt> <dd>%s</dd><br>", html.EscapeString(parser.FormatTime(d.Created)))
	fmt.Fprintf(&b, "<dt>Modified:</dt> <dd>%s</dd>", html.EscapeString(parser.FormatTime(d.Modified)))
	b.WriteString("</dl>\n")
	b.Write(body)
	b.WriteString("</div>")
	return b.String(), nil
}

func (p *Pipeline) exportHTML(docs []models.Document, outputPath string, singleFile bool) error {
	if singleFile {
		parts := make([]string, 0, len(docs))
		for _, d := range docs {
			part, err := p.renderHTML(d)
			if err != nil {
				return err
			}
			parts = append(parts, part)
		}
		page := fmt.Sprintf(htmlPage, "Exported Documents", strings.Join(parts, "\n"))
		return writeFile(outputPath, []byte(page))
	}

	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", outputPath, err)
	}
	for _, d := range docs {
		part, err := p.renderHTML(d)
		if err != nil {
			return err
		}
		page := fmt.Sprintf(htmlPage, html.EscapeString(d.Title), part)
		name := stem(d.Location) + ".html"
		if err := writeFile(filepath.Join(outputPath, name), []byte(page)); err != nil {
			return err
		}
	}
	return nil
}
