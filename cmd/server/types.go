package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scentmatch/server/internal/cache"
	"github.com/scentmatch/server/internal/config"
	"github.com/scentmatch/server/internal/insights"
	"github.com/scentmatch/server/internal/llm"
	"github.com/scentmatch/server/internal/recommend"
	"github.com/scentmatch/server/scentmatch/brands"
	"github.com/scentmatch/server/scentmatch/collections"
	"github.com/scentmatch/server/scentmatch/fragrances"
	"github.com/scentmatch/server/scentmatch/quiz"
	"github.com/scentmatch/server/scentmatch/users"
)

// holds all dependencies and state for the API server
type Server struct {
	db             *pgxpool.Pool
	config         *config.Config
	userRepo       *users.Repository
	brandRepo      *brands.Repository
	fragranceRepo  *fragrances.Repository
	collectionRepo *collections.Repository
	quizRepo       *quiz.Repository
	services       *Services
	router         *gin.Engine
	buffer         *cache.QuizBuffer
	flusher        *cache.Flusher
	cleanupService *quiz.CleanupService
}

// holds all external service clients (LLM, retriever, insight writer)
type Services struct {
	LLM         llm.LLM
	Recommender *recommend.Client
	Insights    *insights.Service
}
