package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("SUPABASE_CONNECTION_STRING")
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	redisURL := os.Getenv("REDIS_URL")
	voyageKey := os.Getenv("VOYAGE_AI_API_KEY")
	openaiKey := os.Getenv("OPENAI_API_KEY")
	jwtSecret := os.Getenv("JWT_SECRET")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_CONNECTION_STRING environment variable is required")
	}

	// REDIS_URL is optional, the server degrades to direct database
	// writes and in-memory rate limiting without it

	if voyageKey == "" && openaiKey == "" {
		return nil, fmt.Errorf("VOYAGE_AI_API_KEY or OPENAI_API_KEY environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		DatabaseURL: databaseURL,
		RedisURL:    redisURL,
		VoyageKey:   voyageKey,
		OpenAIKey:   openaiKey,
		JWTSecret:   jwtSecret,
		Environment: environment,
	}, nil
}

// LoadDataEnvironment loads the subset of configuration the data tooling
// needs. Only the database connection is required.
func LoadDataEnvironment() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("SUPABASE_CONNECTION_STRING")
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	if databaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_CONNECTION_STRING environment variable is required")
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	return &Config{
		DatabaseURL: databaseURL,
		VoyageKey:   os.Getenv("VOYAGE_AI_API_KEY"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		Environment: environment,
	}, nil
}
