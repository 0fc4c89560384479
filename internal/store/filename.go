package store

import (
	"hash/fnv"
	"regexp"
	"strings"

	"github.com/halvard/ansuz/internal/storage"
)

var (
	invalidChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// SanitizeTitle converts a title into a safe file name stem: invalid
// characters removed, runs of whitespace collapsed to hyphens, length
// capped at 100.
func SanitizeTitle(title string) string {
	name := invalidChars.ReplaceAllString(title, "")
	name = whitespace.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if r := []rune(name); len(r) > 100 {
		name = string(r[:100])
	}
	if name == "" {
		return "untitled"
	}
	return name
}

// LocationForTitle derives the storage location a document with the
// given title lives at.
func LocationForTitle(title string) string {
	return SanitizeTitle(title) + storage.DocumentExt
}

// stem strips the document extension from a location.
func stem(location string) string {
	return strings.TrimSuffix(location, storage.DocumentExt)
}

// fallbackID derives a deterministic id from a location for documents
// persisted without one. Creation issues ids from the corpus sequence
// instead; this fallback only covers foreign files, and being a pure
// function of the location keeps load idempotent.
func fallbackID(location string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(location))
	return int(h.Sum32()%999999) + 1
}
