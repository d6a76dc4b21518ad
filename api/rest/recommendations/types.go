package recommendations

import (
	"context"

	"github.com/scentmatch/server/internal/recommend"
	"github.com/scentmatch/server/scentmatch/fragrances"
)

const (
	defaultCount = 10
	maxCount     = 30

	// top rated entries to seed the taste profile from a collection
	profileSeedCount = 5
)

// produces profile-based recommendations; satisfied by the recommend client
type Recommender interface {
	RecommendForProfile(ctx context.Context, profile recommend.Profile) ([]recommend.Result, error)
}

// caches recommendation payloads; satisfied by the quiz buffer, optional
type Cache interface {
	GetRecommendations(ctx context.Context, token string, dest any) (bool, error)
	SetRecommendations(ctx context.Context, token string, payload any) error
}

// reads collection data for profile seeding; satisfied by the collections repo
type CollectionReader interface {
	TopRated(ctx context.Context, userID string, limit int) ([]fragrances.Fragrance, error)
	ListFragranceIDs(ctx context.Context, userID string) ([]string, error)
}

type Response struct {
	Source          string             `json:"source"` // quiz, collection
	Recommendations []recommend.Result `json:"recommendations"`
}
