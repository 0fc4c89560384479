// Package models defines the domain types for Ansuz.
package models

import "time"

// Document represents one stored note: structured metadata plus a
// free-form Markdown body. Location is the file name within the corpus
// directory and is stable unless an explicit rename moves it.
type Document struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Tags     []string  `json:"tags"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
	Body     string    `json:"body"`
	Location string    `json:"location"`
	Size     int64     `json:"size"`
}

// HasTag reports whether the document carries the given tag.
// Tags are case-sensitive.
func (d Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the document's tag set intersects filter.
// An empty filter matches nothing.
func (d Document) HasAnyTag(filter []string) bool {
	for _, f := range filter {
		if d.HasTag(f) {
			return true
		}
	}
	return false
}
