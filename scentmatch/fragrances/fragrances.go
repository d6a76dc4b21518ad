package fragrances

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

var (
	ErrFragranceNotFound = errors.New("fragrance not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, fragranceID string) (*Fragrance, error) {
	row := r.db.QueryRow(ctx, queryGet, fragranceID)

	fragrance, err := scanFragrance(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFragranceNotFound
	}

	if err != nil {
		return nil, err
	}

	return fragrance, nil
}

func (r *Repository) GetBySlug(ctx context.Context, brandID, slug string) (*Fragrance, error) {
	row := r.db.QueryRow(ctx, queryGetBySlug, brandID, slug)

	fragrance, err := scanFragrance(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFragranceNotFound
	}

	if err != nil {
		return nil, err
	}

	return fragrance, nil
}

// lists catalog rows matching the filter with a total count for pagination
func (r *Repository) List(ctx context.Context, filter ListFilter, limit, offset int) ([]Fragrance, int, error) {
	where, args := buildFilter(filter)

	countQuery := `
		SELECT COUNT(*)
		FROM fragrances f
		JOIN fragrance_brands b ON f.brand_id = b.id
	` + where

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count fragrances: %w", err)
	}

	listQuery := `
		SELECT ` + selectColumns + `
		FROM fragrances f
		JOIN fragrance_brands b ON f.brand_id = b.id
	` + where + orderClause(filter.Sort) + fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list fragrances: %w", err)
	}

	defer rows.Close()

	var result []Fragrance

	for rows.Next() {
		fragrance, err := scanFragrance(rows)
		if err != nil {
			return nil, 0, err
		}

		result = append(result, *fragrance)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return result, total, nil
}

// full-text search over name, brand, and accords
func (r *Repository) KeywordSearch(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	rows, err := r.db.Query(ctx, queryKeywordSearch, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute keyword search: %w", err)
	}

	defer rows.Close()

	var hits []SearchHit

	for rows.Next() {
		var hit SearchHit
		err := rows.Scan(
			&hit.ID,
			&hit.BrandID,
			&hit.BrandName,
			&hit.Name,
			&hit.Slug,
			&hit.Gender,
			&hit.RatingValue,
			&hit.RatingCount,
			&hit.ReleaseYear,
			&hit.Accords,
			&hit.TopNotes,
			&hit.MiddleNotes,
			&hit.BaseNotes,
			&hit.PopularityScore,
			&hit.SampleAvailable,
			&hit.SamplePriceUSD,
			&hit.CreatedAt,
			&hit.UpdatedAt,
			&hit.Rank,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		hits = append(hits, hit)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hits, nil
}

// returns fragrances without embeddings, most popular first
func (r *Repository) ListMissingEmbedding(ctx context.Context, limit int) ([]EmbeddingTarget, error) {
	rows, err := r.db.Query(ctx, queryListMissingEmbedding, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list fragrances missing embeddings: %w", err)
	}

	defer rows.Close()

	var targets []EmbeddingTarget

	for rows.Next() {
		var (
			id, brandName, name, gender               string
			accords, topNotes, middleNotes, baseNotes []string
		)

		if err := rows.Scan(&id, &brandName, &name, &gender, &accords, &topNotes, &middleNotes, &baseNotes); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		targets = append(targets, EmbeddingTarget{
			ID:       id,
			Document: BuildDocument(brandName, name, gender, accords, topNotes, middleNotes, baseNotes),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return targets, nil
}

func (r *Repository) UpdateEmbedding(ctx context.Context, fragranceID string, embedding []float32) error {
	tag, err := r.db.Exec(ctx, queryUpdateEmbedding, pgvector.NewVector(embedding), fragranceID)
	if err != nil {
		return fmt.Errorf("failed to update embedding: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrFragranceNotFound
	}

	return nil
}

// upserts a batch of catalog rows inside one transaction
func (r *Repository) Import(ctx context.Context, batch []ImportRow) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	for _, row := range batch {
		_, err := tx.Exec(ctx, queryUpsert,
			row.ID,
			row.BrandID,
			row.Name,
			row.Slug,
			row.Gender,
			row.RatingValue,
			row.RatingCount,
			row.ReleaseYear,
			emptyIfNil(row.Accords),
			emptyIfNil(row.TopNotes),
			emptyIfNil(row.MiddleNotes),
			emptyIfNil(row.BaseNotes),
			row.PopularityScore,
			row.SampleAvailable,
			row.SamplePriceUSD,
		)

		if err != nil {
			return fmt.Errorf("failed to upsert fragrance %s: %w", row.ID, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, queryDeleteAll)
	return err
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCountAll).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

// builds the embedding document for a fragrance
//
// the same text shape is used at ingest and query time so similarity
// comparisons stay meaningful
func BuildDocument(brandName, name, gender string, accords, topNotes, middleNotes, baseNotes []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s by %s, a %s fragrance.", name, brandName, gender)

	if len(accords) > 0 {
		fmt.Fprintf(&b, " Main accords: %s.", strings.Join(accords, ", "))
	}

	if len(topNotes) > 0 {
		fmt.Fprintf(&b, " Top notes: %s.", strings.Join(topNotes, ", "))
	}

	if len(middleNotes) > 0 {
		fmt.Fprintf(&b, " Middle notes: %s.", strings.Join(middleNotes, ", "))
	}

	if len(baseNotes) > 0 {
		fmt.Fprintf(&b, " Base notes: %s.", strings.Join(baseNotes, ", "))
	}

	return b.String()
}

func buildFilter(filter ListFilter) (string, []any) {
	clauses := []string{}
	args := []any{}

	if filter.Gender != "" {
		args = append(args, filter.Gender)
		clauses = append(clauses, fmt.Sprintf("f.gender = $%d", len(args)))
	}

	if filter.BrandID != "" {
		args = append(args, filter.BrandID)
		clauses = append(clauses, fmt.Sprintf("f.brand_id = $%d", len(args)))
	}

	if len(filter.Accords) > 0 {
		args = append(args, filter.Accords)
		clauses = append(clauses, fmt.Sprintf("f.accords && $%d", len(args)))
	}

	if filter.MinRating > 0 {
		args = append(args, filter.MinRating)
		clauses = append(clauses, fmt.Sprintf("f.rating_value >= $%d", len(args)))
	}

	if filter.SampleOnly {
		clauses = append(clauses, "f.sample_available = true")
	}

	if len(clauses) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func orderClause(sort string) string {
	switch sort {
	case "rating":
		return " ORDER BY f.rating_value DESC, f.rating_count DESC"
	case "newest":
		return " ORDER BY f.release_year DESC NULLS LAST, f.created_at DESC"
	default:
		return " ORDER BY f.popularity_score DESC"
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

// row scanner shared by single-row and multi-row queries
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFragrance(row rowScanner) (*Fragrance, error) {
	var f Fragrance

	err := row.Scan(
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
		return nil, err
	}

	return &f, nil
}
