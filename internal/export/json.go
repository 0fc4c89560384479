package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/halvard/ansuz/internal/models"
	"github.com/halvard/ansuz/internal/parser"
)

// record is the serialized field set of one document. Content is always
// present, even when the body is empty.
type record struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	Created  string   `json:"created"`
	Modified string   `json:"modified"`
	Content  string   `json:"content"`
}

func toRecord(d models.Document) record {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return record{
		ID:       d.ID,
		Title:    d.Title,
		Tags:     tags,
		Created:  parser.FormatTime(d.Created),
		Modified: parser.FormatTime(d.Modified),
		Content:  d.Body,
	}
}

func (p *Pipeline) exportJSON(docs []models.Document, outputPath string, singleFile bool) error {
	if singleFile {
		records := make([]record, len(docs))
		for i, d := range docs {
			records[i] = toRecord(d)
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("export: marshal: %w", err)
		}
		return writeFile(outputPath, append(data, '\n'))
	}

	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", outputPath, err)
	}
	for _, d := range docs {
		data, err := json.MarshalIndent(toRecord(d), "", "  ")
		if err != nil {
			return fmt.Errorf("export: marshal %s: %w", d.Location, err)
		}
		name := fmt.Sprintf("%d_%s.json", d.ID, stem(d.Location))
		if err := writeFile(filepath.Join(outputPath, name), append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// writeFile creates parent directories as needed and writes data. The
// output lives outside the corpus, so this goes straight to the OS.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: mkdir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
