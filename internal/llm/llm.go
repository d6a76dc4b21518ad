package llm

import (
	"context"
	"fmt"
)

// combines an Embedder and a TextGenerator into a single LLM
type CompositeLLM struct {
	Embedder
	TextGenerator
}

// creates a new LLM with auto-configuration from environment variables
func NewLLM(ctx context.Context) (LLM, error) {
	config, err := loadConfig()

	if err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}

	return NewLLMWithConfig(ctx, config)
}

// creates a new LLM with explicit configuration
func NewLLMWithConfig(ctx context.Context, config *Config) (LLM, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	// create embedder based on provider
	var embedder Embedder

	switch config.EmbedderProvider {
	case ProviderVoyage:
		embedder = NewVoyageEmbedder(VoyageConfig{
			APIKey: config.EmbedderAPIKey,
			Model:  config.EmbedderModel,
		})
	case ProviderOpenAI:
		embedder = NewOpenAIEmbedder(OpenAIConfig{
			APIKey: config.EmbedderAPIKey,
			Model:  config.EmbedderModel,
		})
	default:
		return nil, fmt.Errorf("unsupported embedder provider: %s", config.EmbedderProvider)
	}

	// create generator (OpenAI chat completions) when a key is set;
	// a nil generator leaves text generation unconfigured
	var generator TextGenerator

	if config.GeneratorAPIKey != "" {
		generator = NewOpenAIGenerator(OpenAIConfig{
			APIKey:      config.GeneratorAPIKey,
			Model:       config.GeneratorModel,
			MaxTokens:   config.GeneratorMaxTokens,
			Temperature: config.GeneratorTemperature,
		})
	}

	return &CompositeLLM{
		Embedder:      embedder,
		TextGenerator: generator,
	}, nil
}

// Generator returns the underlying text generator, or nil when text
// generation is not configured.
func (c *CompositeLLM) Generator() TextGenerator {
	return c.TextGenerator
}

// returns the fixed dimensionality of stored embeddings
func EmbeddingDimension() int {
	return voyageEmbeddingDimension
}
