package fragrances

const (
	selectColumns = `
		f.id, f.brand_id, b.name, f.name, f.slug, f.gender,
		f.rating_value, f.rating_count, COALESCE(f.release_year, 0),
		f.accords, f.top_notes, f.middle_notes, f.base_notes,
		f.popularity_score, f.sample_available, f.sample_price_usd,
		f.created_at, f.updated_at
	`

	queryGet = `
		SELECT ` + selectColumns + `
		FROM fragrances f
		JOIN fragrance_brands b ON f.brand_id = b.id
		WHERE f.id = $1
	`

	queryGetBySlug = `
		SELECT ` + selectColumns + `
		FROM fragrances f
		JOIN fragrance_brands b ON f.brand_id = b.id
		WHERE f.brand_id = $1 AND f.slug = $2
	`

	// brand names are folded into the document so "dior" matches the brand
	queryKeywordSearch = `
		SELECT ` + selectColumns + `,
			ts_rank(f.search_document || to_tsvector('english', b.name),
				websearch_to_tsquery('english', $1)) AS rank
		FROM fragrances f
		JOIN fragrance_brands b ON f.brand_id = b.id
		WHERE (f.search_document || to_tsvector('english', b.name))
			@@ websearch_to_tsquery('english', $1)
		ORDER BY rank DESC, f.popularity_score DESC
		LIMIT $2
	`

	queryListMissingEmbedding = `
		SELECT f.id, b.name, f.name, f.gender,
			f.accords, f.top_notes, f.middle_notes, f.base_notes
		FROM fragrances f
		JOIN fragrance_brands b ON f.brand_id = b.id
		WHERE f.embedding IS NULL
		ORDER BY f.popularity_score DESC
		LIMIT $1
	`

	queryUpdateEmbedding = `
		UPDATE fragrances
		SET embedding = $1, embedding_generated_at = NOW()
		WHERE id = $2
	`

	queryUpsert = `
		INSERT INTO fragrances (
			id, brand_id, name, slug, gender, rating_value, rating_count,
			release_year, accords, top_notes, middle_notes, base_notes,
			popularity_score, sample_available, sample_price_usd
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, 0), $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			rating_value = EXCLUDED.rating_value,
			rating_count = EXCLUDED.rating_count,
			accords = EXCLUDED.accords,
			top_notes = EXCLUDED.top_notes,
			middle_notes = EXCLUDED.middle_notes,
			base_notes = EXCLUDED.base_notes,
			popularity_score = EXCLUDED.popularity_score,
			sample_available = EXCLUDED.sample_available,
			sample_price_usd = EXCLUDED.sample_price_usd,
			updated_at = NOW()
	`

	queryDeleteAll = `DELETE FROM fragrances`

	queryCountAll = `SELECT COUNT(*) FROM fragrances`
)
