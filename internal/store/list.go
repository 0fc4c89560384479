package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/halvard/ansuz/internal/apperr"
	"github.com/halvard/ansuz/internal/models"
)

// SortKey selects the field List orders documents by.
type SortKey string

// Sort keys accepted by List.
const (
	SortByTitle    SortKey = "title"
	SortByCreated  SortKey = "created"
	SortByModified SortKey = "modified"
	SortBySize     SortKey = "size"
)

// ListOptions narrows and orders a List result.
type ListOptions struct {
	TagFilter []string
	SortKey   SortKey
	Reverse   bool
	Limit     int
}

// List loads the corpus, keeps documents whose tag set intersects the
// filter (when one is given), sorts by the requested key, and applies
// the limit. The zero SortKey means modified.
func (s *Store) List(opts ListOptions) ([]models.Document, error) {
	docs, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(opts.TagFilter) > 0 {
		kept := docs[:0]
		for _, d := range docs {
			if d.HasAnyTag(opts.TagFilter) {
				kept = append(kept, d)
			}
		}
		docs = kept
	}

	key := opts.SortKey
	if key == "" {
		key = SortByModified
	}
	var less func(a, b models.Document) bool
	switch key {
	case SortByTitle:
		less = func(a, b models.Document) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortByCreated:
		less = func(a, b models.Document) bool { return a.Created.Before(b.Created) }
	case SortByModified:
		less = func(a, b models.Document) bool { return a.Modified.Before(b.Modified) }
	case SortBySize:
		less = func(a, b models.Document) bool { return a.Size < b.Size }
	default:
		return nil, fmt.Errorf("store: sort key %q: %w", key, apperr.ErrValidation)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if opts.Reverse {
			return less(docs[j], docs[i])
		}
		return less(docs[i], docs[j])
	})

	if opts.Limit > 0 && opts.Limit < len(docs) {
		docs = docs[:opts.Limit]
	}
	return docs, nil
}
