package fragrances

import (
	"context"

	"github.com/scentmatch/server/api/rest/pagination"
	"github.com/scentmatch/server/internal/recommend"
	"github.com/scentmatch/server/scentmatch/fragrances"
)

const (
	defaultLimit = 24
	maxLimit     = 100

	defaultSimilarCount = 8
	maxSimilarCount     = 24
)

// provides similarity lookups; satisfied by the recommend client
type Recommender interface {
	SimilarToFragrance(ctx context.Context, fragranceID string, topK int) ([]recommend.Result, error)
}

type ListResponse struct {
	Fragrances []fragrances.Fragrance `json:"fragrances"`
	Pagination pagination.Meta        `json:"pagination"`
}

type SimilarResponse struct {
	FragranceID string             `json:"fragrance_id"`
	Similar     []recommend.Result `json:"similar"`
}
