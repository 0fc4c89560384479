package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/halvard/ansuz/internal/store"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// All routes are read-only: mutation stays with the CLI, whose
// single-process model the corpus relies on.
func NewRouter(s *store.Store, authEnabled bool, token string) chi.Router {
	h := NewHandler(s)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Get("/documents", h.ListDocuments)
	r.Get("/documents/{identifier}", h.GetDocument)
	r.Get("/search", h.Search)
	r.Get("/tags", h.ListTags)

	return r
}
