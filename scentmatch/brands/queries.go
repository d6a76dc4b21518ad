package brands

const (
	queryList = `
		SELECT b.id, b.name, b.slug, COALESCE(b.tier, ''),
			COUNT(f.id) AS fragrance_count, b.created_at
		FROM fragrance_brands b
		LEFT JOIN fragrances f ON f.brand_id = b.id
		GROUP BY b.id
		ORDER BY fragrance_count DESC, b.name
		LIMIT $1 OFFSET $2
	`

	queryCount = `SELECT COUNT(*) FROM fragrance_brands`

	queryGet = `
		SELECT b.id, b.name, b.slug, COALESCE(b.tier, ''),
			COUNT(f.id) AS fragrance_count, b.created_at
		FROM fragrance_brands b
		LEFT JOIN fragrances f ON f.brand_id = b.id
		WHERE b.id = $1
		GROUP BY b.id
	`

	queryUpsert = `
		INSERT INTO fragrance_brands (id, name, slug, tier)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			tier = COALESCE(EXCLUDED.tier, fragrance_brands.tier)
	`

	queryDeleteAll = `DELETE FROM fragrance_brands`
)
