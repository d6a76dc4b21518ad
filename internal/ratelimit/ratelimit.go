package ratelimit

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	apierrors "github.com/scentmatch/server/internal/errors"
	"github.com/scentmatch/server/internal/logger"
)

const (
	// requests per IP per window, limiter rate format
	defaultRate = "120-M"

	storePrefix = "scentmatch:ratelimit"
)

// NewMiddleware builds a per-IP rate limiting middleware backed by Redis.
// A nil client falls back to an in-memory store, which is fine for a single
// instance but won't share counters across replicas.
func NewMiddleware(client *redis.Client) (gin.HandlerFunc, error) {
	rateStr := os.Getenv("RATE_LIMIT")
	if rateStr == "" {
		rateStr = defaultRate
	}

	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", rateStr, err)
	}

	var store limiter.Store

	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix: storePrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
		}
	} else {
		logger.Warn("redis unavailable, using in-memory rate limit store")
		store = memory.NewStore()
	}

	middleware := mgin.NewMiddleware(
		limiter.New(store, rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			apierrors.TooManyRequests(c, "rate limit exceeded, slow down")
		}),
	)

	return middleware, nil
}
