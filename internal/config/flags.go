package config

import (
	"flag"
	"os"
)

// parses CLI flags for the fragrances subcommand
func ParseFragranceFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("fragrances", flag.ExitOnError)
	path := fs.String("path", "./data/fragrances.json", "path to processed fragrance JSON file")
	clearFlag := fs.Bool("clear", false, "clear existing fragrances before importing")
	batch := fs.Int("batch", 100, "rows per insert batch")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Path: *path, Clear: *clearFlag, BatchSize: *batch}
}

// parses CLI flags for the brands subcommand
func ParseBrandFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("brands", flag.ExitOnError)
	path := fs.String("path", "./data/brands.json", "path to brand JSON file")
	clearFlag := fs.Bool("clear", false, "clear existing brands before importing")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{Path: *path, Clear: *clearFlag, BatchSize: 100}
}

// parses CLI flags for the embeddings subcommand
func ParseEmbeddingFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("embeddings", flag.ExitOnError)
	batch := fs.Int("batch", 64, "fragrances per embedding API call")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{BatchSize: *batch}
}

// returns default flags for fragrance import
func DefaultFragranceFlags() Flags {
	return Flags{Path: "./data/fragrances.json", Clear: false, BatchSize: 100}
}

// returns default flags for brand import
func DefaultBrandFlags() Flags {
	return Flags{Path: "./data/brands.json", Clear: false, BatchSize: 100}
}

// returns default flags for embedding backfill
func DefaultEmbeddingFlags() Flags {
	return Flags{BatchSize: 64}
}
