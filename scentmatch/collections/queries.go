package collections

const (
	entryColumns = `
		c.user_id, c.fragrance_id, c.status, c.personal_rating,
		COALESCE(c.notes, ''), c.added_at, c.updated_at
	`

	fragranceColumns = `
		f.id, f.brand_id, b.name, f.name, f.slug, f.gender,
		f.rating_value, f.rating_count, COALESCE(f.release_year, 0),
		f.accords, f.top_notes, f.middle_notes, f.base_notes,
		f.popularity_score, f.sample_available, f.sample_price_usd,
		f.created_at, f.updated_at
	`

	queryAdd = `
		INSERT INTO user_collections (user_id, fragrance_id, status, personal_rating, notes)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		ON CONFLICT (user_id, fragrance_id) DO UPDATE SET
			status = EXCLUDED.status,
			personal_rating = COALESCE(EXCLUDED.personal_rating, user_collections.personal_rating),
			notes = COALESCE(EXCLUDED.notes, user_collections.notes),
			updated_at = NOW()
		RETURNING user_id, fragrance_id, status, personal_rating, COALESCE(notes, ''), added_at, updated_at
	`

	queryUpdate = `
		UPDATE user_collections
		SET status = COALESCE($1, status),
		    personal_rating = COALESCE($2, personal_rating),
		    notes = COALESCE($3, notes),
		    updated_at = NOW()
		WHERE user_id = $4 AND fragrance_id = $5
		RETURNING user_id, fragrance_id, status, personal_rating, COALESCE(notes, ''), added_at, updated_at
	`

	queryRemove = `
		DELETE FROM user_collections
		WHERE user_id = $1 AND fragrance_id = $2
	`

	queryList = `
		SELECT ` + entryColumns + `, ` + fragranceColumns + `
		FROM user_collections c
		JOIN fragrances f ON c.fragrance_id = f.id
		JOIN fragrance_brands b ON f.brand_id = b.id
		WHERE c.user_id = $1 AND ($2 = '' OR c.status = $2)
		ORDER BY c.added_at DESC
		LIMIT $3 OFFSET $4
	`

	queryCount = `
		SELECT COUNT(*)
		FROM user_collections
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
	`

	queryListFragranceIDs = `
		SELECT fragrance_id
		FROM user_collections
		WHERE user_id = $1
	`

	queryStats = `
		SELECT
			COUNT(*) FILTER (WHERE status = 'owned'),
			COUNT(*) FILTER (WHERE status = 'wishlist'),
			COUNT(*) FILTER (WHERE status = 'tried'),
			COALESCE(AVG(personal_rating), 0)
		FROM user_collections
		WHERE user_id = $1
	`

	// the highest-rated entries seed the taste profile for recommendations
	queryTopRated = `
		SELECT ` + fragranceColumns + `
		FROM user_collections c
		JOIN fragrances f ON c.fragrance_id = f.id
		JOIN fragrance_brands b ON f.brand_id = b.id
		WHERE c.user_id = $1 AND c.status IN ('owned', 'tried')
		ORDER BY c.personal_rating DESC NULLS LAST, c.updated_at DESC
		LIMIT $2
	`
)
