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
	"github.com/scentmatch/server/scentmatch/fragrances"
)

// a fragrance row as produced by the scraping pipeline; ratings and
// gender labels arrive raw and get normalized during import
type rawFragrance struct {
	Brand       string   `json:"brand"`
	Name        string   `json:"name"`
	Gender      string   `json:"gender"`
	RatingValue float32  `json:"rating_value"`
	RatingCount int      `json:"rating_count"`
	Year        int      `json:"year,omitempty"`
	Accords     []string `json:"accords,omitempty"`
	TopNotes    []string `json:"top_notes,omitempty"`
	MiddleNotes []string `json:"middle_notes,omitempty"`
	BaseNotes   []string `json:"base_notes,omitempty"`
}

// IngestFragrances imports fragrances from a processed JSON file.
// Brands must be imported first; rows referencing unknown brands are
// skipped with a warning.
func IngestFragrances(db *pgxpool.Pool, flags config.Flags) error {
	ctx := context.Background()
	logger.Info("starting fragrance import", "path", flags.Path, "clear", flags.Clear, "batch_size", flags.BatchSize)

	data, err := os.ReadFile(flags.Path)
	if err != nil {
		return fmt.Errorf("failed to read fragrances file: %w", err)
	}

	var raw []rawFragrance
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse fragrances file: %w", err)
	}

	if len(raw) == 0 {
		return fmt.Errorf("no fragrances found in %s", flags.Path)
	}

	tiers, err := loadBrandTiers(ctx, db)
	if err != nil {
		return err
	}

	fragranceRepo := fragrances.NewRepository(db)

	if flags.Clear {
		logger.Info("clearing existing fragrances")

		if err := fragranceRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to clear fragrances: %w", err)
		}
	}

	var (
		rows     []fragrances.ImportRow
		imported int
		skipped  int
	)

	for _, f := range raw {
		brandSlug := slugify(f.Brand)
		slug := slugify(f.Name)

		if brandSlug == "" || slug == "" {
			skipped++
			continue
		}

		tier, ok := tiers[brandSlug]
		if !ok {
			logger.Warn("skipping fragrance with unknown brand", "brand", f.Brand, "name", f.Name)
			skipped++

			continue
		}

		gender := normalizeGender(f.Gender)

		rows = append(rows, fragrances.ImportRow{
			ID:              fragranceID(brandSlug, slug),
			BrandID:         brandSlug,
			BrandName:       f.Brand,
			Name:            f.Name,
			Slug:            slug,
			Gender:          gender,
			RatingValue:     f.RatingValue,
			RatingCount:     f.RatingCount,
			ReleaseYear:     f.Year,
			Accords:         f.Accords,
			TopNotes:        f.TopNotes,
			MiddleNotes:     f.MiddleNotes,
			BaseNotes:       f.BaseNotes,
			PopularityScore: popularityScore(f.RatingValue, f.RatingCount, f.Year, tier),
			SampleAvailable: true,
			SamplePriceUSD:  samplePriceUSD(tier),
		})

		// flush in batches so one bad transaction does not lose everything
		if len(rows) >= flags.BatchSize {
			if err := fragranceRepo.Import(ctx, rows); err != nil {
				return fmt.Errorf("failed to import batch: %w", err)
			}

			imported += len(rows)
			logger.Info("imported batch", "total", imported)
			rows = rows[:0]
		}
	}

	if len(rows) > 0 {
		if err := fragranceRepo.Import(ctx, rows); err != nil {
			return fmt.Errorf("failed to import batch: %w", err)
		}

		imported += len(rows)
	}

	logger.Info("successfully imported fragrances", "count", imported, "skipped", skipped)

	return nil
}

// loadBrandTiers pages through the brands table and maps brand id to tier
func loadBrandTiers(ctx context.Context, db *pgxpool.Pool) (map[string]string, error) {
	brandRepo := brands.NewRepository(db)
	tiers := make(map[string]string)

	const pageSize = 200

	for offset := 0; ; offset += pageSize {
		page, total, err := brandRepo.List(ctx, pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to load brands: %w", err)
		}

		for _, b := range page {
			tiers[b.ID] = b.Tier
		}

		if offset+pageSize >= total || len(page) == 0 {
			break
		}
	}

	if len(tiers) == 0 {
		return nil, fmt.Errorf("no brands in database, run the brands command first")
	}

	return tiers, nil
}
