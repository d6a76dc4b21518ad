package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scentmatch/server/internal/config"
	"github.com/scentmatch/server/internal/llm"
	"github.com/scentmatch/server/internal/logger"
	"github.com/scentmatch/server/scentmatch/fragrances"
)

// BackfillEmbeddings generates embeddings for fragrances that do not
// have one yet, in batches until none remain
func BackfillEmbeddings(db *pgxpool.Pool, flags config.Flags) error {
	ctx := context.Background()
	logger.Info("starting embedding backfill", "batch_size", flags.BatchSize)

	llmClient, err := llm.NewLLM(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize embedding client: %w", err)
	}

	fragranceRepo := fragrances.NewRepository(db)

	total := 0

	for {
		targets, err := fragranceRepo.ListMissingEmbedding(ctx, flags.BatchSize)
		if err != nil {
			return err
		}

		if len(targets) == 0 {
			break
		}

		documents := make([]string, len(targets))
		for i, t := range targets {
			documents[i] = t.Document
		}

		embeddings, err := llmClient.GenerateEmbeddings(ctx, documents)
		if err != nil {
			return fmt.Errorf("failed to generate embeddings: %w", err)
		}

		if len(embeddings) != len(targets) {
			return fmt.Errorf("embedding count mismatch: got %d, want %d", len(embeddings), len(targets))
		}

		for i, t := range targets {
			if err := fragranceRepo.UpdateEmbedding(ctx, t.ID, embeddings[i]); err != nil {
				return fmt.Errorf("failed to store embedding for %s: %w", t.ID, err)
			}
		}

		total += len(targets)
		logger.Info("embedded batch", "batch", len(targets), "total", total)

		// a short final batch means nothing is left
		if len(targets) < flags.BatchSize {
			break
		}
	}

	logger.Info("successfully backfilled embeddings", "count", total)

	return nil
}
