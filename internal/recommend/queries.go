package recommend

const (
	// pgvector cosine search via the get_similar_fragrances SQL function
	vectorSearchQuery = `
		SELECT
			id,
			brand_id,
			brand_name,
			name,
			slug,
			gender,
			rating_value,
			rating_count,
			release_year,
			accords,
			top_notes,
			middle_notes,
			base_notes,
			popularity_score,
			sample_available,
			sample_price_usd,
			similarity
		FROM get_similar_fragrances($1, $2, $3)
	`

	// neighbors of an existing fragrance, by its stored embedding
	similarToQuery = `
		SELECT
			id,
			brand_id,
			brand_name,
			name,
			slug,
			gender,
			rating_value,
			rating_count,
			release_year,
			accords,
			top_notes,
			middle_notes,
			base_notes,
			popularity_score,
			sample_available,
			sample_price_usd,
			similarity
		FROM get_similar_to_fragrance($1, $2)
	`
)
