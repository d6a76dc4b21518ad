package quiz

import (
	"context"

	"github.com/scentmatch/server/internal/cache"
	"github.com/scentmatch/server/internal/insights"
	engine "github.com/scentmatch/server/internal/quiz"
	"github.com/scentmatch/server/internal/recommend"
	"github.com/scentmatch/server/scentmatch/quiz"
)

const recommendationCount = 10

// produces profile-based recommendations; satisfied by the recommend client
type Recommender interface {
	RecommendForProfile(ctx context.Context, profile recommend.Profile) ([]recommend.Result, error)
}

// writes the personalized insight; satisfied by the insights service
type InsightWriter interface {
	Generate(ctx context.Context, req insights.Request) *insights.Insight
}

// write-behind answer storage; satisfied by the quiz buffer, optional
type AnswerBuffer interface {
	SaveAnswer(ctx context.Context, answer *cache.BufferedAnswer) error
	GetAnswers(ctx context.Context, sessionID string) (map[string][]string, error)
}

// forces buffered answers into Postgres before analysis, optional
type SessionFlusher interface {
	FlushSession(ctx context.Context, sessionID string) error
}

// lists a user's collection ids for exclusion, optional
type CollectionLister interface {
	ListFragranceIDs(ctx context.Context, userID string) ([]string, error)
}

// Deps bundles everything the quiz handlers need; Buffer, Flusher, and
// Collections may be nil and the handlers degrade gracefully
type Deps struct {
	Sessions    *quiz.Repository
	Recommender Recommender
	Insights    InsightWriter
	Buffer      AnswerBuffer
	Flusher     SessionFlusher
	Collections CollectionLister
}

type StartResponse struct {
	Token     string            `json:"token"`
	Session   *quiz.Session     `json:"session"`
	Questions []engine.Question `json:"questions"`
}

type AnswerRequest struct {
	QuestionID string   `json:"question_id" binding:"required,max=50"`
	Values     []string `json:"values" binding:"required,min=1,max=10,dive,max=50"`
}

type AnswerResponse struct {
	QuestionID string `json:"question_id"`
	Answered   int    `json:"answered"`
	Remaining  int    `json:"remaining"`
}

type AnalyzeResponse struct {
	Session         *quiz.Session      `json:"session"`
	Archetype       engine.Archetype   `json:"archetype"`
	Recommendations []recommend.Result `json:"recommendations"`
	Insight         *insights.Insight  `json:"insight"`
}

type SessionResponse struct {
	Session   *quiz.Session   `json:"session"`
	Responses []quiz.Response `json:"responses,omitempty"`
}

type ClaimRequest struct {
	Token string `json:"token" binding:"required,len=32"`
}
