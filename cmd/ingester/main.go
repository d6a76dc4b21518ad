package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scentmatch/server/internal/config"
	"github.com/scentmatch/server/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ingester <command> [options]")
		fmt.Println("Commands:")
		fmt.Println("  brands      - import brands from processed JSON")
		fmt.Println("  fragrances  - import fragrances from processed JSON")
		fmt.Println("  embeddings  - generate embeddings for fragrances missing them")
		fmt.Println("  all         - import brands, fragrances, then backfill embeddings")
		fmt.Println("\nOptions:")
		fmt.Println("  --path <path>  - Custom path to import from")
		fmt.Println("  --clear        - Clear existing data before importing")
		fmt.Println("  --batch <n>    - Batch size")
		os.Exit(1)
	}

	command := os.Args[1]

	// the ingester only needs the database, not the full server config
	cfg, err := config.LoadDataEnvironment()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// connect to database
	ctx := context.Background()
	db, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("connected to database")

	// route to appropriate command
	switch command {
	case "brands":
		flags := config.ParseBrandFlags()
		if err := IngestBrands(db, flags); err != nil {
			logger.Fatal("failed to import brands", "error", err)
		}

	case "fragrances":
		flags := config.ParseFragranceFlags()
		if err := IngestFragrances(db, flags); err != nil {
			logger.Fatal("failed to import fragrances", "error", err)
		}

	case "embeddings":
		flags := config.ParseEmbeddingFlags()
		if err := BackfillEmbeddings(db, flags); err != nil {
			logger.Fatal("failed to backfill embeddings", "error", err)
		}

	case "all":
		// use default flags for all subcommands
		brandFlags := config.DefaultBrandFlags()
		fragranceFlags := config.DefaultFragranceFlags()
		embeddingFlags := config.DefaultEmbeddingFlags()

		// check for --clear flag
		for _, arg := range os.Args[2:] {
			if arg == "--clear" {
				brandFlags.Clear = true
				fragranceFlags.Clear = true
			}
		}

		logger.Info("importing all data (brands, fragrances, embeddings)")

		if err := IngestBrands(db, brandFlags); err != nil {
			logger.Fatal("failed to import brands", "error", err)
		}

		if err := IngestFragrances(db, fragranceFlags); err != nil {
			logger.Fatal("failed to import fragrances", "error", err)
		}

		if err := BackfillEmbeddings(db, embeddingFlags); err != nil {
			logger.Fatal("failed to backfill embeddings", "error", err)
		}

		logger.Info("successfully imported all data")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
