package insights

import (
	"context"
	"strings"

	"github.com/scentmatch/server/internal/llm"
	"github.com/scentmatch/server/internal/logger"
)

func NewService(generator llm.TextGenerator) *Service {
	return &Service{generator: generator}
}

// Generate writes a personalized insight for a quiz outcome. A generator
// failure degrades to the template fallback rather than erroring, so quiz
// analysis always completes.
func (s *Service) Generate(ctx context.Context, req Request) *Insight {
	if s.generator == nil {
		return s.fallback(req)
	}

	generation, err := s.generator.GenerateText(ctx, buildSystemPrompt(), buildUserPrompt(req))
	if err != nil {
		logger.Warn("insight generation failed, using fallback", "error", err)
		return s.fallback(req)
	}

	text := strings.TrimSpace(generation.Text)
	if text == "" {
		return s.fallback(req)
	}

	return &Insight{
		Text:   text,
		Source: SourceAI,
		Model:  generation.Model,
	}
}

// GenerateStream streams the insight chunk by chunk. On generator failure the
// fallback text is delivered as a single chunk.
func (s *Service) GenerateStream(ctx context.Context, req Request, onChunk func(chunk string) error) (*Insight, error) {
	if s.generator == nil {
		insight := s.fallback(req)
		return insight, onChunk(insight.Text)
	}

	var builder strings.Builder

	err := s.generator.GenerateTextStream(ctx, buildSystemPrompt(), buildUserPrompt(req), func(chunk string) error {
		builder.WriteString(chunk)
		return onChunk(chunk)
	})

	if err != nil {
		// only fall back when nothing was delivered yet
		if builder.Len() == 0 {
			logger.Warn("insight stream failed, using fallback", "error", err)
			insight := s.fallback(req)
			return insight, onChunk(insight.Text)
		}

		return nil, err
	}

	return &Insight{
		Text:   strings.TrimSpace(builder.String()),
		Source: SourceAI,
		Model:  s.generator.Model(),
	}, nil
}

func (s *Service) fallback(req Request) *Insight {
	return &Insight{
		Text:   buildFallbackText(req),
		Source: SourceFallback,
	}
}
