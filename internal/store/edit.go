package store

import (
	"github.com/halvard/ansuz/internal/models"
	"github.com/halvard/ansuz/internal/tags"
)

// EditRequest describes a metadata edit. Zero-valued fields are left
// untouched; the body is never modified here.
type EditRequest struct {
	Rename     string
	AddTags    []string
	RemoveTags []string
}

// Edit resolves identifier and applies the requested metadata changes.
// Tag edits and a rename are persisted together; the rename also moves
// the record to its new title-derived location.
func (s *Store) Edit(identifier string, req EditRequest) (*models.Document, error) {
	doc, err := s.Resolve(identifier)
	if err != nil {
		return nil, err
	}

	if len(req.AddTags) > 0 || len(req.RemoveTags) > 0 {
		doc.Tags = tags.Apply(doc.Tags, req.AddTags, req.RemoveTags)
	}

	if req.Rename != "" {
		if err := s.Rename(doc, req.Rename); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
