package quiz

const (
	sessionColumns = `
		id, token, user_id, status, COALESCE(archetype, ''), results,
		created_at, last_activity, analyzed_at
	`

	queryCreateSession = `
		INSERT INTO quiz_sessions (token)
		VALUES ($1)
		RETURNING ` + sessionColumns + `
	`

	queryGetByToken = `
		SELECT ` + sessionColumns + `
		FROM quiz_sessions
		WHERE token = $1
	`

	queryTouchSession = `
		UPDATE quiz_sessions
		SET last_activity = NOW()
		WHERE token = $1
	`

	querySaveResponse = `
		INSERT INTO quiz_responses (session_id, question_id, answer_values)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id, question_id) DO UPDATE SET
			answer_values = EXCLUDED.answer_values,
			answered_at = NOW()
	`

	queryListResponses = `
		SELECT question_id, answer_values, answered_at
		FROM quiz_responses
		WHERE session_id = $1
		ORDER BY answered_at
	`

	queryMarkAnalyzed = `
		UPDATE quiz_sessions
		SET status = 'analyzed',
		    archetype = $1,
		    results = $2,
		    analyzed_at = NOW(),
		    last_activity = NOW()
		WHERE token = $3
		RETURNING ` + sessionColumns + `
	`

	queryClaim = `
		UPDATE quiz_sessions
		SET user_id = $1, last_activity = NOW()
		WHERE token = $2 AND user_id IS NULL
		RETURNING ` + sessionColumns + `
	`

	// only unclaimed in-progress sessions are eligible for expiry
	queryDeleteStale = `
		DELETE FROM quiz_sessions
		WHERE user_id IS NULL
		  AND status = 'in_progress'
		  AND last_activity < $1
	`
)
