package fragrances

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

// a catalog row; IDs are slugs of the form "brand__fragrance"
type Fragrance struct {
	ID              string    `json:"id"`
	BrandID         string    `json:"brand_id"`
	BrandName       string    `json:"brand_name"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Gender          string    `json:"gender"` // men, women, unisex
	RatingValue     float32   `json:"rating_value"`
	RatingCount     int       `json:"rating_count"`
	ReleaseYear     int       `json:"release_year,omitempty"`
	Accords         []string  `json:"accords,omitempty"`
	TopNotes        []string  `json:"top_notes,omitempty"`
	MiddleNotes     []string  `json:"middle_notes,omitempty"`
	BaseNotes       []string  `json:"base_notes,omitempty"`
	PopularityScore float32   `json:"popularity_score"`
	SampleAvailable bool      `json:"sample_available"`
	SamplePriceUSD  int       `json:"sample_price_usd,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// a keyword search hit with its text rank
type SearchHit struct {
	Fragrance
	Rank float32 `json:"rank"`
}

// browse filters; zero values mean "no filter"
type ListFilter struct {
	Gender     string   // men, women, unisex
	BrandID    string
	Accords    []string // any-match against the accords array
	MinRating  float32
	SampleOnly bool
	Sort       string // popularity (default), rating, newest
}

// row data for catalog import; mirrors the processed pipeline JSON
type ImportRow struct {
	ID              string   `json:"id"`
	BrandID         string   `json:"brand_id"`
	BrandName       string   `json:"brand_name"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Gender          string   `json:"gender"`
	RatingValue     float32  `json:"rating_value"`
	RatingCount     int      `json:"rating_count"`
	ReleaseYear     int      `json:"year,omitempty"`
	Accords         []string `json:"accords,omitempty"`
	TopNotes        []string `json:"top_notes,omitempty"`
	MiddleNotes     []string `json:"middle_notes,omitempty"`
	BaseNotes       []string `json:"base_notes,omitempty"`
	PopularityScore float32  `json:"popularity_score"`
	SampleAvailable bool     `json:"sample_available"`
	SamplePriceUSD  int      `json:"sample_price_usd,omitempty"`
}

// a fragrance id paired with the text used to embed it
type EmbeddingTarget struct {
	ID       string
	Document string
}
