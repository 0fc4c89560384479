// Package testutil provides shared test helpers for setting up corpora.
package testutil

import (
	"testing"

	"github.com/halvard/ansuz/internal/storage"
	"github.com/halvard/ansuz/internal/store"
)

// TestCorpus creates a temporary corpus directory with a document store.
func TestCorpus(t *testing.T) (string, *store.Store) {
	t.Helper()
	dir := t.TempDir()
	fs, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store.New(fs, nil)
}

// MustCreate creates a document or fails the test.
func MustCreate(t *testing.T, s *store.Store, title string, tags []string, body string) {
	t.Helper()
	if _, err := s.Create(title, tags, body); err != nil {
		t.Fatalf("Create %q: %v", title, err)
	}
}
