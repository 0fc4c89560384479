// Package tags implements the aggregate tag view over a corpus and the
// batch operations that rewrite a tag everywhere it appears.
package tags

import (
	"sort"
	"strings"

	"github.com/halvard/ansuz/internal/models"
)

// Normalize trims tags, drops empties, de-duplicates, and sorts. Every
// mutation site runs its tag set through here before persisting.
func Normalize(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Apply adds and removes tags from a set, returning the normalized
// result.
func Apply(current, add, remove []string) []string {
	drop := make(map[string]struct{}, len(remove))
	for _, t := range remove {
		drop[strings.TrimSpace(t)] = struct{}{}
	}
	merged := make([]string, 0, len(current)+len(add))
	for _, t := range current {
		if _, gone := drop[t]; gone {
			continue
		}
		merged = append(merged, t)
	}
	for _, t := range add {
		if _, gone := drop[strings.TrimSpace(t)]; gone {
			continue
		}
		merged = append(merged, t)
	}
	return Normalize(merged)
}

// Count scans every document's tag set and accumulates usage counts.
func Count(docs []models.Document) map[string]int {
	counts := make(map[string]int)
	for _, d := range docs {
		for _, t := range d.Tags {
			counts[t]++
		}
	}
	return counts
}

// Parse splits a comma-separated tag list, dropping empty entries.
func Parse(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
