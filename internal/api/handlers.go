package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/halvard/ansuz/internal/apperr"
	"github.com/halvard/ansuz/internal/models"
	"github.com/halvard/ansuz/internal/parser"
	"github.com/halvard/ansuz/internal/search"
	"github.com/halvard/ansuz/internal/store"
	"github.com/halvard/ansuz/internal/tags"
)

// Handler holds API route handlers. Every handler performs a fresh
// corpus scan; nothing is cached between requests.
type Handler struct {
	store *store.Store
}

// NewHandler creates a new Handler.
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// documentItem is the list/search response shape for one document.
type documentItem struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	Created  string   `json:"created"`
	Modified string   `json:"modified"`
	Location string   `json:"location"`
}

func toItem(d models.Document) documentItem {
	t := d.Tags
	if t == nil {
		t = []string{}
	}
	return documentItem{
		ID:       d.ID,
		Title:    d.Title,
		Tags:     t,
		Created:  parser.FormatTime(d.Created),
		Modified: parser.FormatTime(d.Modified),
		Location: d.Location,
	}
}

// ListDocuments handles GET /api/documents with optional tag filter,
// sort key, reverse flag, and limit.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	reverse, _ := strconv.ParseBool(q.Get("reverse"))

	docs, err := h.store.List(store.ListOptions{
		TagFilter: tags.Parse(q.Get("tag")),
		SortKey:   store.SortKey(q.Get("sort")),
		Reverse:   reverse,
		Limit:     limit,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		slog.Error("list documents failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	items := make([]documentItem, len(docs))
	for i, d := range docs {
		items[i] = toItem(d)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"documents": items,
		"total":     len(items),
	})
}

// GetDocument handles GET /api/documents/{identifier}, resolving the
// identifier through the usual tier order.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")
	if identifier == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("identifier is required"))
		return
	}
	doc, err := h.store.Resolve(identifier)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("resolve failed", slog.String("identifier", identifier), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	item := toItem(*doc)
	writeJSON(w, http.StatusOK, map[string]any{
		"id":       item.ID,
		"title":    item.Title,
		"tags":     item.Tags,
		"created":  item.Created,
		"modified": item.Modified,
		"location": item.Location,
		"body":     doc.Body,
	})
}

// Search handles GET /api/search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	scope := search.ScopeBoth
	switch q.Get("scope") {
	case "", "both":
	case "title":
		scope = search.ScopeTitle
	case "body":
		scope = search.ScopeBody
	default:
		writeJSON(w, http.StatusBadRequest, errorBody("scope must be title, body, or both"))
		return
	}
	caseSensitive, _ := strconv.ParseBool(q.Get("case_sensitive"))

	docs, err := h.store.LoadAll()
	if err != nil {
		slog.Error("search scan failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	matches, err := search.Run(docs, search.Options{
		Query:         q.Get("q"),
		Scope:         scope,
		CaseSensitive: caseSensitive,
		TagFilter:     tags.Parse(q.Get("tag")),
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	type searchItem struct {
		Document documentItem `json:"document"`
		Kind     string       `json:"kind"`
		Context  string       `json:"context"`
	}
	items := make([]searchItem, len(matches))
	for i, m := range matches {
		items[i] = searchItem{Document: toItem(m.Doc), Kind: string(m.Kind), Context: m.Context}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"matches": items,
		"total":   len(items),
	})
}

// ListTags handles GET /api/tags, returning tag usage counts.
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.LoadAll()
	if err != nil {
		slog.Error("tag scan failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"tags": tags.Count(docs),
	})
}
