package insights

import (
	"github.com/scentmatch/server/internal/llm"
	"github.com/scentmatch/server/internal/recommend"
)

// insight provenance, stored alongside quiz results
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

type Service struct {
	generator llm.TextGenerator
}

// everything the writer needs about one quiz outcome
type Request struct {
	ArchetypeName    string
	ArchetypeTagline string
	ProfileText      string
	Recommendations  []recommend.Result
}

type Insight struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Model  string `json:"model,omitempty"`
}
