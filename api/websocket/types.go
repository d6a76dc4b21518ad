package websocket

import (
	"context"
	"time"

	"github.com/scentmatch/server/internal/insights"
	"github.com/scentmatch/server/internal/recommend"
	"github.com/scentmatch/server/scentmatch/quiz"
)

const (
	// time allowed to write a message to the peer
	writeWait = 10 * time.Second

	streamRecommendationCount = 10
)

// message types sent to the client
const (
	TypeChunk = "chunk"
	TypeDone  = "done"
	TypeError = "error"
)

// a frame on the insight stream
type Message struct {
	Type   string `json:"type"`
	Text   string `json:"text,omitempty"`
	Source string `json:"source,omitempty"`
	Model  string `json:"model,omitempty"`
	Error  string `json:"error,omitempty"`
}

// produces profile-based recommendations; satisfied by the recommend client
type Recommender interface {
	RecommendForProfile(ctx context.Context, profile recommend.Profile) ([]recommend.Result, error)
}

// streams insight text; satisfied by the insights service
type InsightStreamer interface {
	GenerateStream(ctx context.Context, req insights.Request, onChunk func(chunk string) error) (*insights.Insight, error)
}

// Deps bundles the insight stream dependencies
type Deps struct {
	Sessions    *quiz.Repository
	Recommender Recommender
	Insights    InsightStreamer
}
