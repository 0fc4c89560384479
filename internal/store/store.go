// Package store implements the document store: enumeration, loading
// with metadata backfill, persistence, creation, rename, and
// identifier resolution over a corpus directory.
package store

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/halvard/ansuz/internal/apperr"
	"github.com/halvard/ansuz/internal/models"
	"github.com/halvard/ansuz/internal/parser"
	"github.com/halvard/ansuz/internal/storage"
	"github.com/halvard/ansuz/internal/tags"
)

// Store coordinates document persistence over a storage provider.
type Store struct {
	fs     storage.Provider
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Store. A nil logger discards warnings.
func New(fs storage.Provider, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{fs: fs, logger: logger, now: time.Now}
}

// Provider returns the underlying storage provider.
func (s *Store) Provider() storage.Provider {
	return s.fs
}

// Load reads and decodes the document at location, backfilling any
// missing metadata field. Backfill is idempotent: a present field is
// never overwritten, and the id fallback is a pure function of the
// location.
func (s *Store) Load(location string) (*models.Document, error) {
	data, err := s.fs.Read(location)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", location, err)
	}
	meta, body, err := parser.Split(data)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", location, err)
	}
	if meta == nil {
		meta = &parser.Meta{}
	}

	doc := &models.Document{
		ID:       meta.ID,
		Title:    meta.Title,
		Tags:     meta.Tags,
		Created:  parser.ParseTime(meta.Created),
		Modified: parser.ParseTime(meta.Modified),
		Body:     body,
		Location: location,
		Size:     int64(len(data)),
	}
	if doc.ID == 0 {
		doc.ID = fallbackID(location)
	}
	if doc.Title == "" {
		doc.Title = stem(location)
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	now := s.now()
	if doc.Created.IsZero() {
		doc.Created = now
	}
	if doc.Modified.IsZero() {
		doc.Modified = now
	}
	return doc, nil
}

// LoadAll loads every enumerated document in deterministic location
// order. A document that fails to load is skipped with a warning; the
// rest of the corpus is still returned.
func (s *Store) LoadAll() ([]models.Document, error) {
	locations, err := s.fs.List()
	if err != nil {
		return nil, fmt.Errorf("store: enumerate: %w", err)
	}
	docs := make([]models.Document, 0, len(locations))
	for _, loc := range locations {
		doc, err := s.Load(loc)
		if err != nil {
			s.logger.Warn("skipping unreadable document",
				slog.String("location", loc),
				slog.String("error", err.Error()))
			continue
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

// Save rewrites the full record (metadata header plus body) at the
// document's location and bumps Modified. The body is written
// byte-for-byte; Save never moves the file.
func (s *Store) Save(doc *models.Document) error {
	doc.Modified = s.now()
	doc.Tags = tags.Normalize(doc.Tags)
	data, err := parser.Compose(parser.Meta{
		ID:       doc.ID,
		Title:    doc.Title,
		Tags:     doc.Tags,
		Created:  parser.FormatTime(doc.Created),
		Modified: parser.FormatTime(doc.Modified),
	}, doc.Body)
	if err != nil {
		return fmt.Errorf("store: save %s: %w", doc.Location, err)
	}
	if err := s.fs.Write(doc.Location, data); err != nil {
		return fmt.Errorf("store: save %s: %w", doc.Location, err)
	}
	doc.Size = int64(len(data))
	return nil
}

// Create writes a new document. The target location is derived from the
// title; if a document already lives there the create fails with
// apperr.ErrDuplicate and nothing is written.
func (s *Store) Create(title string, tagList []string, body string) (*models.Document, error) {
	location := LocationForTitle(title)
	exists, err := s.fs.Exists(location)
	if err != nil {
		return nil, fmt.Errorf("store: create: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("store: create %q: %w", title, apperr.ErrDuplicate)
	}

	id, err := s.nextID()
	if err != nil {
		return nil, fmt.Errorf("store: create: %w", err)
	}

	now := s.now()
	doc := &models.Document{
		ID:       id,
		Title:    title,
		Tags:     tags.Normalize(tagList),
		Created:  now,
		Modified: now,
		Body:     body,
		Location: location,
	}
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Rename updates the title and moves the record to the location derived
// from the new title, as one operation. The duplicate check is exact at
// the filename level: two titles collide iff they sanitize to the same
// file name.
func (s *Store) Rename(doc *models.Document, newTitle string) error {
	newLocation := LocationForTitle(newTitle)
	if newLocation != doc.Location {
		exists, err := s.fs.Exists(newLocation)
		if err != nil {
			return fmt.Errorf("store: rename: %w", err)
		}
		if exists {
			return fmt.Errorf("store: rename to %q: %w", newTitle, apperr.ErrDuplicate)
		}
	}

	oldLocation := doc.Location
	doc.Title = newTitle
	if err := s.Save(doc); err != nil {
		return err
	}
	if newLocation != oldLocation {
		if err := s.fs.Move(oldLocation, newLocation); err != nil {
			return fmt.Errorf("store: rename move: %w", err)
		}
		doc.Location = newLocation
	}
	return nil
}

// Delete removes the document's underlying file. Destruction is final.
func (s *Store) Delete(doc models.Document) error {
	if err := s.fs.Delete(doc.Location); err != nil {
		return fmt.Errorf("store: delete %s: %w", doc.Location, err)
	}
	return nil
}
