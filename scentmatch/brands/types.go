package brands

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

type Brand struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Tier           string    `json:"tier,omitempty"` // luxury, premium, designer, niche
	FragranceCount int       `json:"fragrance_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// row data for brand import
type ImportRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Tier string `json:"tier,omitempty"`
}
