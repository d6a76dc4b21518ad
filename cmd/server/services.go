package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scentmatch/server/internal/config"
	"github.com/scentmatch/server/internal/insights"
	"github.com/scentmatch/server/internal/llm"
	"github.com/scentmatch/server/internal/recommend"
	"github.com/scentmatch/server/scentmatch/fragrances"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config, db *pgxpool.Pool, fragranceRepo *fragrances.Repository) (*Services, error) {
	llmClient, err := llm.NewLLM(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	recommender := recommend.NewClient(db, llmClient, fragranceRepo)

	// insights take the generator directly so a missing OpenAI key
	// (nil generator) activates the template fallback
	var generator llm.TextGenerator = llmClient
	if composite, ok := llmClient.(*llm.CompositeLLM); ok {
		generator = composite.Generator()
	}

	insightService := insights.NewService(generator)

	return &Services{
		LLM:         llmClient,
		Recommender: recommender,
		Insights:    insightService,
	}, nil
}
