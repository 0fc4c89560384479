package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/halvard/ansuz/internal/storage"
	"github.com/halvard/ansuz/internal/store"
)

// testEnv sets up a temp corpus with a few documents and a router.
// authToken="" means disabled mode.
func testEnv(t *testing.T, authToken string) (*store.Store, http.Handler) {
	t.Helper()

	dir := t.TempDir()
	fs, err := storage.NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	s := store.New(fs, nil)

	for _, d := range []struct {
		title string
		tags  []string
		body  string
	}{
		{"Python Tips", []string{"python", "tips"}, "Use list comprehensions for clarity.\n"},
		{"Meeting Notes", []string{"work"}, "Discussed quarterly goals.\n"},
		{"Grocery List", []string{"home"}, "- milk\n- eggs\n"},
	} {
		if _, err := s.Create(d.title, d.tags, d.body); err != nil {
			t.Fatalf("Create %q: %v", d.title, err)
		}
	}

	return s, NewRouter(s, authToken != "", authToken)
}

func get(router http.Handler, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListDocuments(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(router, "/documents", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	docs := resp["documents"].([]any)
	if len(docs) != 3 {
		t.Errorf("len(documents) = %d, want 3", len(docs))
	}
	if resp["total"] != float64(3) {
		t.Errorf("total = %v, want 3", resp["total"])
	}
}

func TestListDocumentsTagFilter(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(router, "/documents?tag=python", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	docs := resp["documents"].([]any)
	if len(docs) != 1 {
		t.Fatalf("len(documents) = %d, want 1", len(docs))
	}
	item := docs[0].(map[string]any)
	if item["title"] != "Python Tips" {
		t.Errorf("title = %v, want Python Tips", item["title"])
	}
}

func TestListDocumentsSortAndLimit(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(router, "/documents?sort=title&limit=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	docs := resp["documents"].([]any)
	if len(docs) != 2 {
		t.Fatalf("len(documents) = %d, want 2", len(docs))
	}
	first := docs[0].(map[string]any)
	if first["title"] != "Grocery List" {
		t.Errorf("first title = %v, want Grocery List", first["title"])
	}
}

func TestListDocumentsBadSortKey(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(router, "/documents?sort=flavor", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad sort key = %d, want 400", w.Code)
	}
}

func TestGetDocumentByID(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(router, "/documents/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["title"] != "Python Tips" {
		t.Errorf("title = %v, want Python Tips", resp["title"])
	}
	if resp["body"] != "Use list comprehensions for clarity.\n" {
		t.Errorf("body = %q", resp["body"])
	}
}

func TestGetDocumentByTitleSubstring(t *testing.T) {
	_, router := testEnv(t, "")

	// "meeting" matches no ID and no exact title, but is a
	// case-insensitive substring of "Meeting Notes".
	w := get(router, "/documents/meeting", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get = %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["title"] != "Meeting Notes" {
		t.Errorf("title = %v, want Meeting Notes", resp["title"])
	}
}

func TestGetDocumentNotFound(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(router, "/documents/nonexistent", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("missing document = %d, want 404", w.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(router, "/search?q=comprehensions", "")
	if w.Code != http.StatusOK {
		t.Fatalf("search = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	matches := resp["matches"].([]any)
	if len(matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(matches))
	}
	m := matches[0].(map[string]any)
	if m["kind"] != "body" {
		t.Errorf("kind = %v, want body", m["kind"])
	}
}

func TestSearchTitleScope(t *testing.T) {
	_, router := testEnv(t, "")

	// "milk" appears in the Grocery List body only; title scope must
	// come back empty.
	w := get(router, "/search?q=milk&scope=title", "")
	if w.Code != http.StatusOK {
		t.Fatalf("search = %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["total"] != float64(0) {
		t.Errorf("total = %v, want 0", resp["total"])
	}
}

func TestSearchMissingQuery(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(router, "/search", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("search no query = %d, want 400", w.Code)
	}
}

func TestSearchBadScope(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(router, "/search?q=x&scope=everything", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad scope = %d, want 400", w.Code)
	}
}

func TestListTags(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(router, "/tags", "")
	if w.Code != http.StatusOK {
		t.Fatalf("tags = %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	counts := resp["tags"].(map[string]any)
	if counts["python"] != float64(1) {
		t.Errorf("python count = %v, want 1", counts["python"])
	}
	if len(counts) != 4 {
		t.Errorf("distinct tags = %d, want 4", len(counts))
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	_, router := testEnv(t, "secret123")

	w := get(router, "/documents", "secret123")
	if w.Code != http.StatusOK {
		t.Errorf("authed list = %d, want 200", w.Code)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	_, router := testEnv(t, "secret123")

	w := get(router, "/documents", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthed = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_WrongToken(t *testing.T) {
	_, router := testEnv(t, "secret123")

	w := get(router, "/documents", "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong token = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(router, "/documents", "")
	if w.Code != http.StatusOK {
		t.Errorf("no auth = %d, want 200", w.Code)
	}
}
