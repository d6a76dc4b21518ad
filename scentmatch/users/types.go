package users

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Provider        string    `json:"provider"`
	ProviderID      string    `json:"-"`
	Name            string    `json:"name"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	GenderAffinity  string    `json:"gender_affinity,omitempty"` // men, women, unisex
	FavoriteAccords []string  `json:"favorite_accords,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	Name            *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	GenderAffinity  *string  `json:"gender_affinity,omitempty" binding:"omitempty,oneof=men women unisex"`
	FavoriteAccords []string `json:"favorite_accords,omitempty" binding:"max=20,dive,max=50"`
}
