package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/scentmatch/server/scentmatch/fragrances"
)

// implements querier over canned rows or a canned error
type stubQuerier struct {
	rows pgx.Rows
	err  error
}

func (q *stubQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	if q.err != nil {
		return nil, q.err
	}

	return q.rows, nil
}

type stubEmbedder struct {
	err error
}

func (e stubEmbedder) GenerateEmbedding(_ context.Context, _ string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}

	return []float32{0.1, 0.2, 0.3}, nil
}

type stubKeywords struct {
	hits []fragrances.SearchHit
	err  error
}

func (k stubKeywords) KeywordSearch(_ context.Context, _ string, _ int) ([]fragrances.SearchHit, error) {
	return k.hits, k.err
}

// a single-row pgx.Rows carrying just the fields the tests assert on
type stubRows struct {
	id         string
	gender     string
	similarity float32
	consumed   bool
}

func (r *stubRows) Next() bool {
	if r.consumed {
		return false
	}

	r.consumed = true

	return true
}

func (r *stubRows) Scan(dest ...any) error {
	*dest[0].(*string) = r.id
	*dest[5].(*string) = r.gender
	*dest[16].(*float32) = r.similarity

	return nil
}

func (r *stubRows) Close()                                       {}
func (r *stubRows) Err() error                                   { return nil }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Values() ([]any, error)                       { return nil, nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

// verifies the merge logic dedupes, ranks, and limits correctly
func TestMergeAndRank(t *testing.T) {
	vector := []Result{
		{Fragrance: fragrances.Fragrance{ID: "chanel__bleu"}, Similarity: 0.95},
		{Fragrance: fragrances.Fragrance{ID: "dior__sauvage"}, Similarity: 0.90},
		{Fragrance: fragrances.Fragrance{ID: "creed__aventus"}, Similarity: 0.85},
	}

	keyword := []fragrances.SearchHit{
		{Fragrance: fragrances.Fragrance{ID: "dior__sauvage"}, Rank: 0.08}, // duplicate
		{Fragrance: fragrances.Fragrance{ID: "dior__homme"}, Rank: 0.06},
		{Fragrance: fragrances.Fragrance{ID: "ysl__y"}, Rank: 0.04},
	}

	merged := mergeAndRank(vector, keyword, 5)

	// verify deduplication
	if len(merged) != 5 {
		t.Errorf("Expected 5 unique results, got %d", len(merged))
	}

	// verify ordering by score (descending)
	for i := range len(merged) - 1 {
		if merged[i].Score < merged[i+1].Score {
			t.Errorf("Results not sorted correctly: %f < %f at position %d",
				merged[i].Score, merged[i+1].Score, i)
		}
	}

	// verify no duplicate IDs
	seen := make(map[string]bool)

	for _, result := range merged {
		if seen[result.Fragrance.ID] {
			t.Errorf("Duplicate ID found: %s", result.Fragrance.ID)
		}

		seen[result.Fragrance.ID] = true
	}

	// verify top K limit
	topK := 3
	limited := mergeAndRank(vector, keyword, topK)

	if len(limited) != topK {
		t.Errorf("Expected %d results after topK limit, got %d", topK, len(limited))
	}
}

// the best keyword hit should outrank a weak vector hit
func TestMergeAndRankKeywordNormalization(t *testing.T) {
	vector := []Result{
		{Fragrance: fragrances.Fragrance{ID: "weak"}, Similarity: 0.40},
	}

	keyword := []fragrances.SearchHit{
		{Fragrance: fragrances.Fragrance{ID: "exact"}, Rank: 0.12},
	}

	merged := mergeAndRank(vector, keyword, 2)

	if len(merged) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(merged))
	}

	if merged[0].Fragrance.ID != "exact" {
		t.Errorf("Expected exact keyword match first, got %s", merged[0].Fragrance.ID)
	}
}

// a duplicate keeps its vector similarity even when the keyword score wins
func TestMergeAndRankDuplicateKeepsSimilarity(t *testing.T) {
	vector := []Result{
		{Fragrance: fragrances.Fragrance{ID: "dior__sauvage"}, Similarity: 0.50},
	}

	keyword := []fragrances.SearchHit{
		{Fragrance: fragrances.Fragrance{ID: "dior__sauvage"}, Rank: 0.10},
	}

	merged := mergeAndRank(vector, keyword, 5)

	if len(merged) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(merged))
	}

	if merged[0].Similarity != 0.50 {
		t.Errorf("Expected similarity 0.50 preserved, got %f", merged[0].Similarity)
	}
}

// popularity should break near-ties between equally similar hits
func TestMergeAndRankPopularityBlend(t *testing.T) {
	vector := []Result{
		{Fragrance: fragrances.Fragrance{ID: "obscure", PopularityScore: 0.5}, Similarity: 0.80},
		{Fragrance: fragrances.Fragrance{ID: "popular", PopularityScore: 9.5}, Similarity: 0.80},
	}

	merged := mergeAndRank(vector, nil, 2)

	if merged[0].Fragrance.ID != "popular" {
		t.Errorf("Expected popular fragrance first, got %s", merged[0].Fragrance.ID)
	}
}

// verifies gender filtering keeps unisex matches
func TestFilterGender(t *testing.T) {
	results := []Result{
		{Fragrance: fragrances.Fragrance{ID: "a", Gender: "men"}},
		{Fragrance: fragrances.Fragrance{ID: "b", Gender: "women"}},
		{Fragrance: fragrances.Fragrance{ID: "c", Gender: "unisex"}},
	}

	filtered := filterGender(results, "men")

	if len(filtered) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(filtered))
	}

	for _, result := range filtered {
		if result.Fragrance.Gender == "women" {
			t.Errorf("Unexpected gender in results: %s", result.Fragrance.Gender)
		}
	}
}

// when the embedding provider is down the keyword leg still serves results
func TestHybridSearchDegradesToKeywordOnly(t *testing.T) {
	client := &Client{
		pool:     &stubQuerier{},
		embedder: stubEmbedder{err: errors.New("embedding provider unavailable")},
		keywords: stubKeywords{hits: []fragrances.SearchHit{
			{Fragrance: fragrances.Fragrance{ID: "dior__sauvage"}, Rank: 0.08},
		}},
		topK: 10,
	}

	results, err := client.HybridSearch(context.Background(), "sauvage", "", 5)

	if err != nil {
		t.Fatalf("Expected keyword-only degradation, got error: %v", err)
	}

	if len(results) != 1 || results[0].Fragrance.ID != "dior__sauvage" {
		t.Errorf("Expected the keyword hit, got %+v", results)
	}
}

// a failing keyword leg falls back to vector results alone
func TestHybridSearchDegradesToVectorOnly(t *testing.T) {
	client := &Client{
		pool:     &stubQuerier{rows: &stubRows{id: "chanel__bleu", gender: "men", similarity: 0.91}},
		embedder: stubEmbedder{},
		keywords: stubKeywords{err: errors.New("tsquery failed")},
		topK:     10,
	}

	results, err := client.HybridSearch(context.Background(), "blue chanel", "", 5)

	if err != nil {
		t.Fatalf("Expected vector-only degradation, got error: %v", err)
	}

	if len(results) != 1 || results[0].Fragrance.ID != "chanel__bleu" {
		t.Errorf("Expected the vector hit, got %+v", results)
	}
}

// both legs failing is a hard error, not an empty result
func TestHybridSearchErrorsWhenBothLegsFail(t *testing.T) {
	client := &Client{
		pool:     &stubQuerier{},
		embedder: stubEmbedder{err: errors.New("embedding provider unavailable")},
		keywords: stubKeywords{err: errors.New("tsquery failed")},
		topK:     10,
	}

	if _, err := client.HybridSearch(context.Background(), "anything", "", 5); err == nil {
		t.Error("Expected an error when both legs fail")
	}
}

// empty queries are rejected before any embedding call
func TestVectorSearchRejectsEmptyQuery(t *testing.T) {
	client := NewClientWithConfig(nil, nil, nil, &Config{TopK: 10})

	if _, err := client.VectorSearch(context.Background(), "   ", "", 5); err != ErrEmptyQuery {
		t.Errorf("Expected ErrEmptyQuery, got %v", err)
	}
}

func TestRecommendForProfileRejectsEmptyText(t *testing.T) {
	client := NewClientWithConfig(nil, nil, nil, &Config{TopK: 10})

	if _, err := client.RecommendForProfile(context.Background(), Profile{}); err != ErrEmptyQuery {
		t.Errorf("Expected ErrEmptyQuery, got %v", err)
	}
}
