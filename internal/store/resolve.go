package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/halvard/ansuz/internal/apperr"
	"github.com/halvard/ansuz/internal/models"
)

// Resolve maps a user-supplied identifier to exactly one document,
// trying three tiers in fixed order and stopping at the first hit:
//
//  1. numeric identifier: exact id match
//  2. case-insensitive exact title match
//  3. case-insensitive title substring match
//
// Ambiguity in tier 3 is settled by corpus enumeration order, which is
// deterministic (sorted by location). Returns nil when nothing matches.
func Resolve(docs []models.Document, identifier string) *models.Document {
	if id, err := strconv.Atoi(identifier); err == nil {
		for i := range docs {
			if docs[i].ID == id {
				return &docs[i]
			}
		}
	}

	lower := strings.ToLower(identifier)
	for i := range docs {
		if strings.ToLower(docs[i].Title) == lower {
			return &docs[i]
		}
	}
	for i := range docs {
		if strings.Contains(strings.ToLower(docs[i].Title), lower) {
			return &docs[i]
		}
	}
	return nil
}

// Resolve loads the corpus and resolves identifier against it, mapping
// a miss to apperr.ErrNotFound.
func (s *Store) Resolve(identifier string) (*models.Document, error) {
	docs, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	doc := Resolve(docs, identifier)
	if doc == nil {
		return nil, fmt.Errorf("store: resolve %q: %w", identifier, apperr.ErrNotFound)
	}
	return doc, nil
}
