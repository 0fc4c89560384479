package tags

import (
	"io"

	"log/slog"

	"github.com/halvard/ansuz/internal/models"
)

// Saver persists a mutated document. *store.Store satisfies it.
type Saver interface {
	Save(doc *models.Document) error
}

// ConfirmFunc asks the caller to approve a batch rewrite before it
// runs. It receives the documents about to change; returning false
// cancels the operation.
type ConfirmFunc func(affected []models.Document) bool

// Failure records one document a batch operation could not persist.
type Failure struct {
	Title string
	Err   error
}

// Result reports the outcome of a batch tag rewrite. AffectedCount is
// how many documents carried the old tag; UpdatedCount how many were
// persisted. The two differ on partial failure, which completes the
// batch rather than aborting it.
type Result struct {
	AffectedCount int
	UpdatedCount  int
	Failures      []Failure
	Cancelled     bool
}

// Rename replaces oldTag with newTag in every document that carries it.
// De-duplication covers the case where newTag was already present. A
// corpus with no occurrences of oldTag yields a zero-affected result,
// not an error.
func Rename(docs []models.Document, oldTag, newTag string, force bool, confirm ConfirmFunc, s Saver, logger *slog.Logger) *Result {
	return rewrite(docs, oldTag, force, confirm, s, logger, func(set []string) []string {
		out := make([]string, 0, len(set))
		for _, t := range set {
			if t == oldTag {
				out = append(out, newTag)
			} else {
				out = append(out, t)
			}
		}
		return Normalize(out)
	})
}

// Merge removes oldTag from every document that carries it and adds
// newTag where absent. A document already holding both tags ends up
// with exactly one occurrence of newTag.
func Merge(docs []models.Document, oldTag, newTag string, force bool, confirm ConfirmFunc, s Saver, logger *slog.Logger) *Result {
	return rewrite(docs, oldTag, force, confirm, s, logger, func(set []string) []string {
		out := make([]string, 0, len(set)+1)
		for _, t := range set {
			if t != oldTag {
				out = append(out, t)
			}
		}
		out = append(out, newTag)
		return Normalize(out)
	})
}

// rewrite is the shared discovery/confirmation/persist loop. Per-document
// save failures are recorded and do not stop the remaining batch.
func rewrite(docs []models.Document, oldTag string, force bool, confirm ConfirmFunc, s Saver, logger *slog.Logger, transform func([]string) []string) *Result {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var affected []models.Document
	for _, d := range docs {
		if d.HasTag(oldTag) {
			affected = append(affected, d)
		}
	}
	res := &Result{AffectedCount: len(affected)}
	if len(affected) == 0 {
		return res
	}

	if !force && confirm != nil && !confirm(affected) {
		res.Cancelled = true
		return res
	}

	for i := range affected {
		doc := &affected[i]
		doc.Tags = transform(doc.Tags)
		if err := s.Save(doc); err != nil {
			logger.Warn("tag rewrite failed",
				slog.String("title", doc.Title),
				slog.String("error", err.Error()))
			res.Failures = append(res.Failures, Failure{Title: doc.Title, Err: err})
			continue
		}
		res.UpdatedCount++
	}
	return res
}
