package search

import (
	"context"

	"github.com/scentmatch/server/internal/recommend"
)

const (
	defaultCount = 10
	maxCount     = 50
	maxQueryLen  = 500
)

// runs hybrid searches; satisfied by the recommend client
type Searcher interface {
	HybridSearch(ctx context.Context, query, gender string, topK int) ([]recommend.Result, error)
}

type Request struct {
	Query  string `json:"query" binding:"required,max=500"`
	Gender string `json:"gender" binding:"omitempty,oneof=men women unisex"`
	Count  int    `json:"count" binding:"omitempty,min=1,max=50"`
}

type Response struct {
	Query   string             `json:"query"`
	Results []recommend.Result `json:"results"`
}
