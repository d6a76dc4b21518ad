package llm

import (
	"fmt"
	"os"
	"strconv"
)

// loadConfig loads LLM configuration from environment variables
func loadConfig() (*Config, error) {
	// embedder configuration
	embedderProvider := Provider(os.Getenv("EMBEDDER_PROVIDER"))
	if embedderProvider == "" {
		embedderProvider = ProviderVoyage // default
	}

	var embedderAPIKey string

	switch embedderProvider {
	case ProviderVoyage:
		embedderAPIKey = os.Getenv("VOYAGE_AI_API_KEY")
		if embedderAPIKey == "" {
			// fall back to OpenAI embeddings when no Voyage key is configured
			if os.Getenv("OPENAI_API_KEY") != "" {
				embedderProvider = ProviderOpenAI
				embedderAPIKey = os.Getenv("OPENAI_API_KEY")
			} else {
				return nil, fmt.Errorf("VOYAGE_AI_API_KEY environment variable is required")
			}
		}
	case ProviderOpenAI:
		embedderAPIKey = os.Getenv("OPENAI_API_KEY")
		if embedderAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	default:
		return nil, fmt.Errorf("unsupported embedder provider: %s", embedderProvider)
	}

	embedderModel := os.Getenv("EMBEDDER_MODEL")
	if embedderModel == "" {
		if embedderProvider == ProviderVoyage {
			embedderModel = defaultVoyageModel
		} else {
			embedderModel = defaultOpenAIEmbeddingModel
		}
	}

	// generator configuration; optional, insight text falls back to
	// templates when no OpenAI key is configured
	generatorAPIKey := os.Getenv("OPENAI_API_KEY")

	generatorModel := os.Getenv("GENERATOR_MODEL")
	if generatorModel == "" {
		generatorModel = defaultOpenAIChatModel
	}

	generatorMaxTokens := 1024 // default
	if maxTokensStr := os.Getenv("GENERATOR_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			generatorMaxTokens = val
		}
	}

	generatorTemperature := float32(0.7) // default
	if tempStr := os.Getenv("GENERATOR_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			generatorTemperature = float32(val)
		}
	}

	return &Config{
		EmbedderProvider:     embedderProvider,
		EmbedderAPIKey:       embedderAPIKey,
		EmbedderModel:        embedderModel,
		GeneratorAPIKey:      generatorAPIKey,
		GeneratorModel:       generatorModel,
		GeneratorMaxTokens:   generatorMaxTokens,
		GeneratorTemperature: generatorTemperature,
	}, nil
}
