package brands

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBrandNotFound = errors.New("brand not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]Brand, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCount).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	rows, err := r.db.Query(ctx, queryList, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list brands: %w", err)
	}

	defer rows.Close()

	var result []Brand

	for rows.Next() {
		var b Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.Tier, &b.FragranceCount, &b.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan row: %w", err)
		}

		result = append(result, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return result, total, nil
}

func (r *Repository) Get(ctx context.Context, brandID string) (*Brand, error) {
	var b Brand

	err := r.db.QueryRow(ctx, queryGet, brandID).Scan(
		&b.ID, &b.Name, &b.Slug, &b.Tier, &b.FragranceCount, &b.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBrandNotFound
	}

	if err != nil {
		return nil, err
	}

	return &b, nil
}

// upserts a batch of brand rows inside one transaction
func (r *Repository) Import(ctx context.Context, batch []ImportRow) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	for _, row := range batch {
		if _, err := tx.Exec(ctx, queryUpsert, row.ID, row.Name, row.Slug, row.Tier); err != nil {
			return fmt.Errorf("failed to upsert brand %s: %w", row.ID, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, queryDeleteAll)
	return err
}
