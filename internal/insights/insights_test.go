package insights

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scentmatch/server/internal/llm"
	"github.com/scentmatch/server/internal/recommend"
	"github.com/scentmatch/server/scentmatch/fragrances"
)

type stubGenerator struct {
	text   string
	chunks []string
	err    error
}

func (g *stubGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (*llm.Generation, error) {
	if g.err != nil {
		return nil, g.err
	}

	return &llm.Generation{Text: g.text, Model: "stub-model"}, nil
}

func (g *stubGenerator) GenerateTextStream(ctx context.Context, systemPrompt, userPrompt string, onChunk func(chunk string) error) error {
	if g.err != nil {
		return g.err
	}

	for _, chunk := range g.chunks {
		if err := onChunk(chunk); err != nil {
			return err
		}
	}

	return nil
}

func (g *stubGenerator) Model() string { return "stub-model" }

func sampleRequest() Request {
	return Request{
		ArchetypeName:    "The Fresh Minimalist",
		ArchetypeTagline: "Clean, effortless, always appropriate",
		ProfileText:      "A men fragrance with fresh, citrus accords.",
		Recommendations: []recommend.Result{
			{Fragrance: fragrances.Fragrance{
				ID:        "chanel__bleu",
				Name:      "Bleu de Chanel",
				BrandName: "Chanel",
				Accords:   []string{"citrus", "woody", "aromatic"},
			}},
			{Fragrance: fragrances.Fragrance{
				ID:        "dior__sauvage",
				Name:      "Sauvage",
				BrandName: "Dior",
			}},
		},
	}
}

func TestGenerateUsesAIText(t *testing.T) {
	service := NewService(&stubGenerator{text: "  A note about your taste.  "})

	insight := service.Generate(context.Background(), sampleRequest())

	assert.Equal(t, "A note about your taste.", insight.Text)
	assert.Equal(t, SourceAI, insight.Source)
	assert.Equal(t, "stub-model", insight.Model)
}

func TestGenerateFallsBackOnError(t *testing.T) {
	service := NewService(&stubGenerator{err: errors.New("rate limited")})

	insight := service.Generate(context.Background(), sampleRequest())

	assert.Equal(t, SourceFallback, insight.Source)
	assert.Contains(t, insight.Text, "The Fresh Minimalist")
	assert.Contains(t, insight.Text, "Bleu de Chanel")
	assert.Contains(t, insight.Text, "Sauvage")
}

func TestGenerateFallsBackOnEmptyText(t *testing.T) {
	service := NewService(&stubGenerator{text: "   "})

	insight := service.Generate(context.Background(), sampleRequest())

	assert.Equal(t, SourceFallback, insight.Source)
}

func TestGenerateWithoutGenerator(t *testing.T) {
	service := NewService(nil)

	insight := service.Generate(context.Background(), sampleRequest())

	assert.Equal(t, SourceFallback, insight.Source)
	assert.Contains(t, insight.Text, "Samples are the smart way in")
}

func TestGenerateStreamCollectsChunks(t *testing.T) {
	service := NewService(&stubGenerator{chunks: []string{"Your taste ", "runs fresh."}})

	var received []string

	insight, err := service.GenerateStream(context.Background(), sampleRequest(), func(chunk string) error {
		received = append(received, chunk)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Your taste ", "runs fresh."}, received)
	assert.Equal(t, "Your taste runs fresh.", insight.Text)
	assert.Equal(t, SourceAI, insight.Source)
}

func TestGenerateStreamFallsBackBeforeFirstChunk(t *testing.T) {
	service := NewService(&stubGenerator{err: errors.New("connection refused")})

	var received []string

	insight, err := service.GenerateStream(context.Background(), sampleRequest(), func(chunk string) error {
		received = append(received, chunk)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, SourceFallback, insight.Source)
	require.Len(t, received, 1)
	assert.Equal(t, insight.Text, received[0])
}

func TestBuildUserPromptListsRecommendations(t *testing.T) {
	prompt := buildUserPrompt(sampleRequest())

	assert.Contains(t, prompt, "1. Bleu de Chanel by Chanel")
	assert.Contains(t, prompt, "accords: citrus, woody, aromatic")
	assert.Contains(t, prompt, "2. Sauvage by Dior")
}

func TestJoinAccords(t *testing.T) {
	assert.Equal(t, "citrus", joinAccords([]string{"citrus"}))
	assert.Equal(t, "citrus and woody", joinAccords([]string{"citrus", "woody"}))
	assert.Equal(t, "citrus, woody and amber", joinAccords([]string{"citrus", "woody", "amber"}))
	assert.Equal(t, "a, b and c", joinAccords([]string{"a", "b", "c", "d"}))
}
