package quiz

import (
	"context"
	"time"

	"github.com/scentmatch/server/internal/logger"
)

// handles automatic expiry of abandoned anonymous quiz sessions
type CleanupService struct {
	repo                *Repository
	checkInterval       time.Duration
	inactivityThreshold time.Duration
}

// creates a new cleanup service
func NewCleanupService(repo *Repository, checkInterval, inactivityThreshold time.Duration) *CleanupService {
	return &CleanupService{
		repo:                repo,
		checkInterval:       checkInterval,
		inactivityThreshold: inactivityThreshold,
	}
}

// begins the cleanup background loop
func (s *CleanupService) Start(ctx context.Context) {
	logger.Info("starting quiz session cleanup service",
		"check_interval", s.checkInterval,
		"inactivity_threshold", s.inactivityThreshold,
	)

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("quiz session cleanup service stopped")
			return
		case <-ticker.C:
			s.cleanupStaleSessions(ctx)
		}
	}
}

func (s *CleanupService) cleanupStaleSessions(ctx context.Context) {
	threshold := time.Now().Add(-s.inactivityThreshold)

	removed, err := s.repo.DeleteStale(ctx, threshold)
	if err != nil {
		logger.ErrorErr(err, "failed to delete stale quiz sessions")
		return
	}

	if removed > 0 {
		logger.Info("removed stale quiz sessions", "count", removed)
	}
}
