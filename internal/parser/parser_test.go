package parser

import (
	"strings"
	"testing"
	"time"
)

func TestSplit_HeaderAndBody(t *testing.T) {
	input := []byte("---\nid: 3\ntitle: Hello\ntags:\n  - go\n  - notes\ncreated: 2024-01-02T10:00:00Z\nmodified: 2024-01-03T11:30:00Z\n---\n# Hello\nBody text.\n")
	m, body, err := Split(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatal("expected metadata")
	}
	if m.ID != 3 {
		t.Errorf("id = %d, want 3", m.ID)
	}
	if m.Title != "Hello" {
		t.Errorf("title = %q, want %q", m.Title, "Hello")
	}
	if len(m.Tags) != 2 || m.Tags[0] != "go" || m.Tags[1] != "notes" {
		t.Errorf("tags = %v, want [go notes]", m.Tags)
	}
	if body != "# Hello\nBody text.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestSplit_NoHeader(t *testing.T) {
	input := []byte("# Just a heading\nSome text.\n")
	m, body, err := Split(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil metadata, got %+v", m)
	}
	if body != string(input) {
		t.Errorf("body = %q", body)
	}
}

func TestSplit_UnclosedHeaderIsBody(t *testing.T) {
	input := []byte("---\ntitle: dangling\nno closing delimiter\n")
	m, body, err := Split(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Error("expected nil metadata for unclosed header")
	}
	if body != string(input) {
		t.Errorf("body = %q", body)
	}
}

func TestSplit_InvalidYAMLIsError(t *testing.T) {
	input := []byte("---\n: invalid: yaml: {{{\n---\nBody\n")
	if _, _, err := Split(input); err == nil {
		t.Fatal("expected error for unparseable metadata")
	}
}

func TestComposeSplitRoundTrip(t *testing.T) {
	m := Meta{
		ID:       42,
		Title:    "Round Trip",
		Tags:     []string{"a", "b"},
		Created:  "2024-05-01T08:00:00Z",
		Modified: "2024-05-02T09:00:00Z",
	}
	body := "line one\n\nline two\n"

	data, err := Compose(m, body)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	got, gotBody, err := Split(data)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if got.ID != m.ID || got.Title != m.Title || got.Created != m.Created || got.Modified != m.Modified {
		t.Errorf("meta = %+v, want %+v", got, m)
	}
	if gotBody != body {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestComposeBodyWithDelimiterLines(t *testing.T) {
	// A body containing "---" lines must survive: only the first
	// closing delimiter ends the header.
	body := "before\n---\nafter\n"
	data, err := Compose(Meta{ID: 1, Title: "t"}, body)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	_, gotBody, err := Split(data)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if gotBody != body {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestParseTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-02T10:00:00Z", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)},
		{"2024-01-02T10:00:00.123456", time.Date(2024, 1, 2, 10, 0, 0, 123456000, time.UTC)},
		{"2024-01-02", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"not a date", time.Time{}},
	}
	for _, c := range cases {
		if got := ParseTime(c.in); !got.Equal(c.want) {
			t.Errorf("ParseTime(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestComposeEmptyBody(t *testing.T) {
	data, err := Compose(Meta{ID: 1, Title: "empty"}, "")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.HasSuffix(string(data), "---\n") {
		t.Errorf("output should end at the closing delimiter, got %q", data)
	}
}
