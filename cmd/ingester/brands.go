package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scentmatch/server/internal/config"
	"github.com/scentmatch/server/internal/logger"
	"github.com/scentmatch/server/scentmatch/brands"
)

// a brand row as produced by the scraping pipeline
type rawBrand struct {
	Name string `json:"name"`
	Tier string `json:"tier,omitempty"`
}

// IngestBrands imports brands from a processed JSON file
func IngestBrands(db *pgxpool.Pool, flags config.Flags) error {
	ctx := context.Background()
	logger.Info("starting brand import", "path", flags.Path, "clear", flags.Clear)

	data, err := os.ReadFile(flags.Path)
	if err != nil {
		return fmt.Errorf("failed to read brands file: %w", err)
	}

	var raw []rawBrand
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse brands file: %w", err)
	}

	if len(raw) == 0 {
		return fmt.Errorf("no brands found in %s", flags.Path)
	}

	rows := make([]brands.ImportRow, 0, len(raw))

	for _, b := range raw {
		slug := slugify(b.Name)
		if slug == "" {
			logger.Warn("skipping brand with empty name")
			continue
		}

		rows = append(rows, brands.ImportRow{
			ID:   slug,
			Name: b.Name,
			Slug: slug,
			Tier: b.Tier,
		})
	}

	brandRepo := brands.NewRepository(db)

	if flags.Clear {
		logger.Info("clearing existing brands")

		if err := brandRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to clear brands: %w", err)
		}
	}

	if err := brandRepo.Import(ctx, rows); err != nil {
		return fmt.Errorf("failed to import brands: %w", err)
	}

	logger.Info("successfully imported brands", "count", len(rows))

	return nil
}
