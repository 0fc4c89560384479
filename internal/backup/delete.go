package backup

import (
	"fmt"
	"log/slog"

	"github.com/halvard/ansuz/internal/apperr"
	"github.com/halvard/ansuz/internal/models"
	"github.com/halvard/ansuz/internal/store"
)

// ConfirmFunc asks the caller to approve a batch delete. Returning
// false cancels it.
type ConfirmFunc func(resolved []models.Document) bool

// DeleteOptions parameterise a batch delete.
type DeleteOptions struct {
	Force      bool
	WithBackup bool
	Confirm    ConfirmFunc
}

// DeleteResult reports the outcome of a batch delete, per item.
type DeleteResult struct {
	Deleted   []models.Document
	NotFound  []string
	Failures  []Failure
	BackupDir string
	Cancelled bool
}

// Failure records one document that could not be removed.
type Failure struct {
	Title string
	Err   error
}

// DeleteBatch resolves each identifier against the corpus, reports the
// ones that resolve to nothing, optionally snapshots the resolved set,
// and removes each resolved document. Per-document removal failures are
// reported without stopping the batch; resolving nothing at all is
// apperr.ErrNotFound.
func (m *Manager) DeleteBatch(docs []models.Document, identifiers []string, opts DeleteOptions) (*DeleteResult, error) {
	res := &DeleteResult{}

	var resolved []models.Document
	for _, ident := range identifiers {
		doc := store.Resolve(docs, ident)
		if doc == nil {
			res.NotFound = append(res.NotFound, ident)
			continue
		}
		resolved = append(resolved, *doc)
	}
	if len(resolved) == 0 {
		return res, fmt.Errorf("backup: nothing to delete: %w", apperr.ErrNotFound)
	}

	if !opts.Force && opts.Confirm != nil && !opts.Confirm(resolved) {
		res.Cancelled = true
		return res, nil
	}

	if opts.WithBackup {
		dir, err := m.Backup(resolved)
		if err != nil {
			return res, err
		}
		res.BackupDir = dir
	}

	for _, doc := range resolved {
		if err := m.fs.Delete(doc.Location); err != nil {
			m.logger.Warn("delete failed",
				slog.String("location", doc.Location),
				slog.String("error", err.Error()))
			res.Failures = append(res.Failures, Failure{Title: doc.Title, Err: err})
			continue
		}
		res.Deleted = append(res.Deleted, doc)
	}
	return res, nil
}
