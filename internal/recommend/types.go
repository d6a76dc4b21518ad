package recommend

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/scentmatch/server/scentmatch/fragrances"
)

type Client struct {
	pool     querier
	embedder Embedder
	keywords KeywordSearcher
	topK     int
}

// the subset of pgxpool.Pool the client uses
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// generates query embeddings; satisfied by internal/llm clients
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// full-text leg of hybrid search; satisfied by the fragrances repository
type KeywordSearcher interface {
	KeywordSearch(ctx context.Context, query string, limit int) ([]fragrances.SearchHit, error)
}

// a scored search or recommendation hit
type Result struct {
	Fragrance  fragrances.Fragrance `json:"fragrance"`
	Similarity float32              `json:"similarity"`
	Score      float32              `json:"score"`
}

// taste profile driving personalized recommendations
type Profile struct {
	Text       string
	Gender     string
	ExcludeIDs []string
	Limit      int
}

type Config struct {
	TopK int
}
