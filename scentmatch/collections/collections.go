package collections

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scentmatch/server/scentmatch/fragrances"
)

var (
	ErrEntryNotFound = errors.New("collection entry not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// adds a fragrance to the user's collection; re-adding updates the entry
func (r *Repository) Add(ctx context.Context, userID string, req AddEntryRequest) (*Entry, error) {
	var entry Entry

	err := r.db.QueryRow(ctx, queryAdd,
		userID,
		req.FragranceID,
		req.Status,
		req.PersonalRating,
		req.Notes,
	).Scan(
		&entry.UserID,
		&entry.FragranceID,
		&entry.Status,
		&entry.PersonalRating,
		&entry.Notes,
		&entry.AddedAt,
		&entry.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *Repository) Update(ctx context.Context, userID, fragranceID string, req UpdateEntryRequest) (*Entry, error) {
	var entry Entry

	err := r.db.QueryRow(ctx, queryUpdate,
		req.Status,
		req.PersonalRating,
		req.Notes,
		userID,
		fragranceID,
	).Scan(
		&entry.UserID,
		&entry.FragranceID,
		&entry.Status,
		&entry.PersonalRating,
		&entry.Notes,
		&entry.AddedAt,
		&entry.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEntryNotFound
	}

	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *Repository) Remove(ctx context.Context, userID, fragranceID string) error {
	tag, err := r.db.Exec(ctx, queryRemove, userID, fragranceID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// lists collection entries with their fragrances, newest first
// status filters to one membership state when non-empty
func (r *Repository) List(ctx context.Context, userID, status string, limit, offset int) ([]Entry, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCount, userID, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count collection entries: %w", err)
	}

	rows, err := r.db.Query(ctx, queryList, userID, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list collection: %w", err)
	}

	defer rows.Close()

	var entries []Entry

	for rows.Next() {
		var (
			entry Entry
			f     fragrances.Fragrance
		)

		err := rows.Scan(
			&entry.UserID,
			&entry.FragranceID,
			&entry.Status,
			&entry.PersonalRating,
			&entry.Notes,
			&entry.AddedAt,
			&entry.UpdatedAt,
			&f.ID,
			&f.BrandID,
			&f.BrandName,
			&f.Name,
			&f.Slug,
			&f.Gender,
			&f.RatingValue,
			&f.RatingCount,
			&f.ReleaseYear,
			&f.Accords,
			&f.TopNotes,
			&f.MiddleNotes,
			&f.BaseNotes,
			&f.PopularityScore,
			&f.SampleAvailable,
			&f.SamplePriceUSD,
			&f.CreatedAt,
			&f.UpdatedAt,
		)

		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan row: %w", err)
		}

		entry.Fragrance = &f
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// returns every fragrance id in the user's collection (for exclusion filters)
func (r *Repository) ListFragranceIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, queryListFragranceIDs, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection ids: %w", err)
	}

	defer rows.Close()

	var ids []string

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *Repository) Stats(ctx context.Context, userID string) (*Stats, error) {
	var stats Stats

	err := r.db.QueryRow(ctx, queryStats, userID).Scan(
		&stats.Owned,
		&stats.Wishlist,
		&stats.Tried,
		&stats.AvgPersonalRating,
	)

	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// returns the user's highest-rated owned/tried fragrances
func (r *Repository) TopRated(ctx context.Context, userID string, limit int) ([]fragrances.Fragrance, error) {
	rows, err := r.db.Query(ctx, queryTopRated, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top rated entries: %w", err)
	}

	defer rows.Close()

	var result []fragrances.Fragrance

	for rows.Next() {
		var f fragrances.Fragrance

		err := rows.Scan(
			&f.ID,
			&f.BrandID,
			&f.BrandName,
			&f.Name,
			&f.Slug,
			&f.Gender,
			&f.RatingValue,
			&f.RatingCount,
			&f.ReleaseYear,
			&f.Accords,
			&f.TopNotes,
			&f.MiddleNotes,
			&f.BaseNotes,
			&f.PopularityScore,
			&f.SampleAvailable,
			&f.SamplePriceUSD,
			&f.CreatedAt,
			&f.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		result = append(result, f)
	}

	return result, rows.Err()
}
