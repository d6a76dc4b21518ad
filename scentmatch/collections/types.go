package collections

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scentmatch/server/scentmatch/fragrances"
)

type Repository struct {
	db *pgxpool.Pool
}

// collection membership states
const (
	StatusOwned    = "owned"
	StatusWishlist = "wishlist"
	StatusTried    = "tried"
)

// a fragrance in a user's collection
type Entry struct {
	UserID         string                `json:"-"`
	FragranceID    string                `json:"fragrance_id"`
	Status         string                `json:"status"` // owned, wishlist, tried
	PersonalRating *int                  `json:"personal_rating,omitempty"`
	Notes          string                `json:"notes,omitempty"`
	AddedAt        time.Time             `json:"added_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
	Fragrance      *fragrances.Fragrance `json:"fragrance,omitempty"`
}

type AddEntryRequest struct {
	FragranceID    string `json:"fragrance_id" binding:"required,max=200"`
	Status         string `json:"status" binding:"required,oneof=owned wishlist tried"`
	PersonalRating *int   `json:"personal_rating,omitempty" binding:"omitempty,min=1,max=5"`
	Notes          string `json:"notes,omitempty" binding:"max=2000"`
}

type UpdateEntryRequest struct {
	Status         *string `json:"status,omitempty" binding:"omitempty,oneof=owned wishlist tried"`
	PersonalRating *int    `json:"personal_rating,omitempty" binding:"omitempty,min=1,max=5"`
	Notes          *string `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

// per-user collection summary
type Stats struct {
	Owned             int     `json:"owned"`
	Wishlist          int     `json:"wishlist"`
	Tried             int     `json:"tried"`
	AvgPersonalRating float32 `json:"avg_personal_rating"`
}
