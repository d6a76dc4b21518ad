package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/scentmatch/server/api/rest/auth"
	"github.com/scentmatch/server/api/rest/brands"
	"github.com/scentmatch/server/api/rest/collections"
	"github.com/scentmatch/server/api/rest/fragrances"
	"github.com/scentmatch/server/api/rest/health"
	quizapi "github.com/scentmatch/server/api/rest/quiz"
	"github.com/scentmatch/server/api/rest/recommendations"
	"github.com/scentmatch/server/api/rest/search"
	"github.com/scentmatch/server/api/websocket"
	"github.com/scentmatch/server/internal/logger"
	"github.com/scentmatch/server/internal/ratelimit"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())

	if limiter, err := newRateLimiter(server); err != nil {
		logger.Warn("rate limiting disabled", "error", err)
	} else {
		router.Use(limiter)
	}

	router.GET("/health", health.Handler(server.db))

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo)
		brands.RegisterRoutes(v1, server.brandRepo)
		fragrances.RegisterRoutes(v1, server.fragranceRepo, server.services.Recommender)
		search.RegisterRoutes(v1, server.services.Recommender)
		collections.RegisterRoutes(v1, server.collectionRepo)

		quizDeps := quizapi.Deps{
			Sessions:    server.quizRepo,
			Recommender: server.services.Recommender,
			Insights:    server.services.Insights,
			Collections: server.collectionRepo,
		}

		// nil interfaces stay nil unless redis connected
		if server.buffer != nil {
			quizDeps.Buffer = server.buffer
			quizDeps.Flusher = server.flusher
		}

		quizapi.RegisterRoutes(v1, quizDeps)

		recDeps := recommendations.Deps{
			Sessions:    server.quizRepo,
			Users:       server.userRepo,
			Collections: server.collectionRepo,
			Recommender: server.services.Recommender,
		}

		if server.buffer != nil {
			recDeps.Cache = server.buffer
		}

		recommendations.RegisterRoutes(v1, recDeps)

		websocket.RegisterRoutes(v1, websocket.Deps{
			Sessions:    server.quizRepo,
			Recommender: server.services.Recommender,
			Insights:    server.services.Insights,
		})
	}
}

// newRateLimiter builds the per-IP limiter, Redis-backed when available
func newRateLimiter(server *Server) (gin.HandlerFunc, error) {
	if server.buffer != nil {
		return ratelimit.NewMiddleware(server.buffer.Client())
	}

	return ratelimit.NewMiddleware(nil)
}

// CORSMiddleware configures cross-origin access from the web frontend
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			config.AllowOrigins = append(config.AllowOrigins, strings.TrimSpace(origin))
		}
	} else {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	}

	return cors.New(config)
}
