// Package backup snapshots documents into a timestamped directory
// before destructive batch operations, and implements the batch delete
// protocol built on top of it.
package backup

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/halvard/ansuz/internal/models"
	"github.com/halvard/ansuz/internal/storage"
)

// Dir is the reserved subtree snapshots live under, relative to the
// corpus root. The dot prefix keeps it out of document enumeration.
const Dir = ".backups"

// timestampLayout names snapshot directories at second resolution.
const timestampLayout = "20060102_150405"

// Manager copies document files into snapshot directories.
type Manager struct {
	fs     storage.Provider
	logger *slog.Logger
	now    func() time.Time
}

// NewManager creates a Manager. A nil logger discards warnings.
func NewManager(fs storage.Provider, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{fs: fs, logger: logger, now: time.Now}
}

// Backup copies each document's underlying file into a fresh snapshot
// directory and returns its corpus-relative path. Two snapshots started
// within the same clock second get distinct directories: the name is
// probed with a numeric suffix until the create succeeds.
func (m *Manager) Backup(docs []models.Document) (string, error) {
	base := m.now().Format(timestampLayout)
	dir := path.Join(Dir, base)
	for n := 2; ; n++ {
		err := m.fs.Mkdir(dir)
		if err == nil {
			break
		}
		if !errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("backup: create snapshot dir: %w", err)
		}
		dir = path.Join(Dir, fmt.Sprintf("%s_%d", base, n))
	}

	for _, doc := range docs {
		data, err := m.fs.Read(doc.Location)
		if err != nil {
			return "", fmt.Errorf("backup: copy %s: %w", doc.Location, err)
		}
		if err := m.fs.Write(path.Join(dir, doc.Location), data); err != nil {
			return "", fmt.Errorf("backup: copy %s: %w", doc.Location, err)
		}
	}
	return dir, nil
}
