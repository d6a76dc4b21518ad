package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/scentmatch/server/internal/recommend"
	"github.com/scentmatch/server/scentmatch/fragrances"
)

// implements Searcher for testing
type mockSearcher struct {
	hybridSearchFunc func(ctx context.Context, query, gender string, topK int) ([]recommend.Result, error)
	lastQuery        string
	lastGender       string
	lastTopK         int
}

func (m *mockSearcher) HybridSearch(ctx context.Context, query, gender string, topK int) ([]recommend.Result, error) {
	m.lastQuery = query
	m.lastGender = gender
	m.lastTopK = topK

	if m.hybridSearchFunc != nil {
		return m.hybridSearchFunc(ctx, query, gender, topK)
	}

	return []recommend.Result{
		{
			Fragrance: fragrances.Fragrance{ID: "chanel__bleu-de-chanel", Name: "Bleu de Chanel"},
			Score:     0.92,
		},
	}, nil
}

func setupSearchRouter(searcher Searcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/search", SearchHandler(searcher))
	router.POST("/search", SearchHandler(searcher))

	return router
}

func TestSearchHandlerGet(t *testing.T) {
	searcher := &mockSearcher{}
	router := setupSearchRouter(searcher)

	req := httptest.NewRequest(http.MethodGet, "/search?q=fresh+citrus&gender=men&count=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if searcher.lastQuery != "fresh citrus" {
		t.Errorf("expected query 'fresh citrus', got %q", searcher.lastQuery)
	}

	if searcher.lastGender != "men" {
		t.Errorf("expected gender men, got %q", searcher.lastGender)
	}

	if searcher.lastTopK != 5 {
		t.Errorf("expected count 5, got %d", searcher.lastTopK)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(resp.Results) != 1 {
		t.Errorf("expected 1 result, got %d", len(resp.Results))
	}
}

func TestSearchHandlerGetRequiresQuery(t *testing.T) {
	router := setupSearchRouter(&mockSearcher{})

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSearchHandlerGetRejectsLongQuery(t *testing.T) {
	router := setupSearchRouter(&mockSearcher{})

	long := strings.Repeat("a", maxQueryLen+1)
	req := httptest.NewRequest(http.MethodGet, "/search?q="+long, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSearchHandlerPost(t *testing.T) {
	searcher := &mockSearcher{}
	router := setupSearchRouter(searcher)

	body := `{"query": "warm amber for winter", "gender": "women"}`
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if searcher.lastGender != "women" {
		t.Errorf("expected gender women, got %q", searcher.lastGender)
	}

	// no count requested, default applies
	if searcher.lastTopK != defaultCount {
		t.Errorf("expected default count %d, got %d", defaultCount, searcher.lastTopK)
	}
}

// a whitespace-only query must fail validation, not reach the searcher
func TestSearchHandlerPostRejectsBlankQuery(t *testing.T) {
	searcher := &mockSearcher{}
	router := setupSearchRouter(searcher)

	body := `{"query": "   "}`
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	if searcher.lastQuery != "" {
		t.Errorf("searcher should not be called, got query %q", searcher.lastQuery)
	}
}

func TestSearchHandlerPostTrimsQuery(t *testing.T) {
	searcher := &mockSearcher{}
	router := setupSearchRouter(searcher)

	body := `{"query": "  oud wood  "}`
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if searcher.lastQuery != "oud wood" {
		t.Errorf("expected trimmed query, got %q", searcher.lastQuery)
	}
}

func TestSearchHandlerPostRejectsBadGender(t *testing.T) {
	router := setupSearchRouter(&mockSearcher{})

	body := `{"query": "something", "gender": "other"}`
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSearchHandlerClampsCount(t *testing.T) {
	searcher := &mockSearcher{}
	router := setupSearchRouter(searcher)

	req := httptest.NewRequest(http.MethodGet, "/search?q=test&count=1000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if searcher.lastTopK != defaultCount {
		t.Errorf("expected oversized count to fall back to %d, got %d", defaultCount, searcher.lastTopK)
	}
}

func TestSearchHandlerSearcherError(t *testing.T) {
	searcher := &mockSearcher{
		hybridSearchFunc: func(_ context.Context, _, _ string, _ int) ([]recommend.Result, error) {
			return nil, context.DeadlineExceeded
		},
	}
	router := setupSearchRouter(searcher)

	req := httptest.NewRequest(http.MethodGet, "/search?q=test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
