package users

const (
	userColumns = `
		id, email, provider, provider_id, name, COALESCE(avatar_url, ''),
		COALESCE(gender_affinity, ''), favorite_accords, created_at, updated_at
	`

	queryFindOrCreateByProvider = `
		INSERT INTO users (provider, provider_id, email, name, avatar_url)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		ON CONFLICT (provider, provider_id) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			avatar_url = COALESCE(EXCLUDED.avatar_url, users.avatar_url),
			updated_at = NOW()
		RETURNING ` + userColumns + `
	`

	queryFindByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	queryUpdateProfile = `
		UPDATE users
		SET name = COALESCE($1, name),
		    gender_affinity = COALESCE($2, gender_affinity),
		    favorite_accords = COALESCE($3, favorite_accords),
		    updated_at = NOW()
		WHERE id = $4
		RETURNING ` + userColumns + `
	`
)
