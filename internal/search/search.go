// Package search implements substring search over a corpus with
// per-document context extraction.
package search

import (
	"fmt"
	"strings"

	"github.com/halvard/ansuz/internal/apperr"
	"github.com/halvard/ansuz/internal/models"
)

// Scope selects which document fields are matched.
type Scope int

// Search scopes. Title-only and body-only are mutually exclusive
// selections made by the caller; Both is the default.
const (
	ScopeBoth Scope = iota
	ScopeTitle
	ScopeBody
)

// MatchKind tells which field produced a match.
type MatchKind string

// Match kinds.
const (
	MatchTitle MatchKind = "title"
	MatchBody  MatchKind = "body"
)

// contextRadius is how many neighbouring body lines are pulled into the
// context window on each side of the matching line.
const contextRadius = 1

// maxContextLen caps the context string, in runes.
const maxContextLen = 100

// Options parameterise a search run.
type Options struct {
	Query         string
	Scope         Scope
	CaseSensitive bool
	TagFilter     []string
}

// Match pairs a matching document with the context that matched.
type Match struct {
	Doc     models.Document
	Kind    MatchKind
	Context string
}

// Run matches the query against the given documents, in order. The
// query is matched literally: it is never interpreted as a pattern.
// A title hit records the full title as context and skips the body; a
// body hit records a joined window of up to three consecutive lines
// around the first matching line, truncated to 100 runes. Only the
// first body match per document is kept.
func Run(docs []models.Document, opts Options) ([]Match, error) {
	if strings.TrimSpace(opts.Query) == "" {
		return nil, fmt.Errorf("search: empty query: %w", apperr.ErrValidation)
	}

	contains := func(haystack string) bool {
		if opts.CaseSensitive {
			return strings.Contains(haystack, opts.Query)
		}
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(opts.Query))
	}

	var out []Match
	for _, d := range docs {
		if len(opts.TagFilter) > 0 && !d.HasAnyTag(opts.TagFilter) {
			continue
		}

		if opts.Scope != ScopeBody && contains(d.Title) {
			out = append(out, Match{Doc: d, Kind: MatchTitle, Context: d.Title})
			continue
		}
		if opts.Scope == ScopeTitle {
			continue
		}

		lines := strings.Split(d.Body, "\n")
		for i, line := range lines {
			if !contains(line) {
				continue
			}
			out = append(out, Match{Doc: d, Kind: MatchBody, Context: contextWindow(lines, i)})
			break
		}
	}
	return out, nil
}

// contextWindow joins the lines around index i, clamped at the body
// boundaries, and truncates the result with a marker when it exceeds
// the cap.
func contextWindow(lines []string, i int) string {
	lo := i - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := i + contextRadius + 1
	if hi > len(lines) {
		hi = len(lines)
	}
	parts := make([]string, 0, hi-lo)
	for _, line := range lines[lo:hi] {
		parts = append(parts, strings.TrimSpace(line))
	}
	ctx := strings.Join(parts, " ")
	if r := []rune(ctx); len(r) > maxContextLen {
		ctx = string(r[:maxContextLen-3]) + "..."
	}
	return ctx
}
