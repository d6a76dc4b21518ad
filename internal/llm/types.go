package llm

import "context"

// combines embedding generation and text generation
type LLM interface {
	Embedder
	TextGenerator
}

// represents different LLM providers
type Provider string

const (
	ProviderVoyage Provider = "voyage"
	ProviderOpenAI Provider = "openai"
)

// generates embeddings from text
//
// single-text requests are embedded as search queries, batch requests as
// documents (providers that distinguish input types index them differently)
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// generates natural-language text from a prompt
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (*Generation, error)
	GenerateTextStream(ctx context.Context, systemPrompt, userPrompt string, onChunk func(chunk string) error) error
	Model() string
}

// holds a completed generation with token accounting
type Generation struct {
	Text         string
	Model        string
	InputTokens  int
	OutputTokens int
}

// holds configuration for LLM initialization
type Config struct {
	// embedder configuration
	EmbedderProvider Provider
	EmbedderAPIKey   string
	EmbedderModel    string // e.g., "voyage-3"

	// generator configuration
	GeneratorAPIKey      string
	GeneratorModel       string // e.g., "gpt-4o-mini"
	GeneratorMaxTokens   int
	GeneratorTemperature float32
}
