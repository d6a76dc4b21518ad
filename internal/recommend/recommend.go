package recommend

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/scentmatch/server/internal/logger"
	"github.com/scentmatch/server/scentmatch/fragrances"
)

var ErrEmptyQuery = errors.New("query text is empty")

// NewClient creates a recommendation client over an existing pool
func NewClient(pool *pgxpool.Pool, embedder Embedder, keywords KeywordSearcher) *Client {
	return NewClientWithConfig(pool, embedder, keywords, loadConfig())
}

// NewClientWithConfig creates a recommendation client with explicit configuration
func NewClientWithConfig(pool *pgxpool.Pool, embedder Embedder, keywords KeywordSearcher, config *Config) *Client {
	return &Client{
		pool:     pool,
		embedder: embedder,
		keywords: keywords,
		topK:     config.TopK,
	}
}

// VectorSearch embeds the query text and runs a cosine similarity search.
// gender filters to men/women/unisex when non-empty; unisex always matches.
func (c *Client) VectorSearch(ctx context.Context, queryText, gender string, topK int) ([]Result, error) {
	if strings.TrimSpace(queryText) == "" {
		return nil, ErrEmptyQuery
	}

	embedding, err := c.embedder.GenerateEmbedding(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	return c.searchByEmbedding(ctx, embedding, gender, topK)
}

func (c *Client) searchByEmbedding(ctx context.Context, embedding []float32, gender string, topK int) ([]Result, error) {
	rows, err := c.pool.Query(ctx, vectorSearchQuery, pgvector.NewVector(embedding), topK, gender)
	if err != nil {
		return nil, fmt.Errorf("failed to execute vector search: %w", err)
	}

	defer rows.Close()

	return scanResults(rows)
}

// SimilarToFragrance returns the nearest neighbors of a stored fragrance
func (c *Client) SimilarToFragrance(ctx context.Context, fragranceID string, topK int) ([]Result, error) {
	if topK <= 0 {
		topK = c.topK
	}

	rows, err := c.pool.Query(ctx, similarToQuery, fragranceID, topK)
	if err != nil {
		return nil, fmt.Errorf("failed to execute similarity search: %w", err)
	}

	defer rows.Close()

	return scanResults(rows)
}

// HybridSearch runs vector and keyword searches in parallel and merges them.
// The vector leg carries semantic intent; the keyword leg catches exact
// brand and fragrance names the embedding may miss.
func (c *Client) HybridSearch(ctx context.Context, query, gender string, topK int) ([]Result, error) {
	if topK <= 0 {
		topK = c.topK
	}

	// fetch a few extra per leg for merging
	legK := topK + mergeOverfetch

	var (
		vectorResults  []Result
		keywordResults []fragrances.SearchHit
		vectorErr      error
		keywordErr     error
		wg             sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		vectorResults, vectorErr = c.VectorSearch(ctx, query, gender, legK)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		keywordResults, keywordErr = c.keywords.KeywordSearch(ctx, query, legK)
	}()

	wg.Wait()

	if vectorErr != nil {
		// degrade to keyword-only when the embedding provider is down
		if keywordErr != nil {
			return nil, fmt.Errorf("hybrid search failed: %w", vectorErr)
		}

		logger.Warn("vector search failed, using keyword results only", "error", vectorErr)
		vectorResults = nil
	}

	if keywordErr != nil {
		logger.Warn("keyword search failed, using vector results only", "error", keywordErr)
		keywordResults = nil
	}

	merged := mergeAndRank(vectorResults, keywordResults, topK)

	if gender != "" {
		merged = filterGender(merged, gender)
	}

	return merged, nil
}

// RecommendForProfile embeds a taste profile and returns matches, skipping
// fragrances the user already has in their collection
func (c *Client) RecommendForProfile(ctx context.Context, profile Profile) ([]Result, error) {
	if strings.TrimSpace(profile.Text) == "" {
		return nil, ErrEmptyQuery
	}

	limit := profile.Limit
	if limit <= 0 {
		limit = c.topK
	}

	embedding, err := c.embedder.GenerateEmbedding(ctx, profile.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed taste profile: %w", err)
	}

	// overfetch so exclusions don't starve the result set
	fetchK := limit + len(profile.ExcludeIDs) + mergeOverfetch

	results, err := c.searchByEmbedding(ctx, embedding, profile.Gender, fetchK)
	if err != nil {
		return nil, err
	}

	if len(profile.ExcludeIDs) > 0 {
		filtered := results[:0]

		for _, result := range results {
			if !slices.Contains(profile.ExcludeIDs, result.Fragrance.ID) {
				filtered = append(filtered, result)
			}
		}

		results = filtered
	}

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}
