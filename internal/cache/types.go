package cache

import "time"

// represents a quiz answer waiting to be flushed to Postgres
type BufferedAnswer struct {
	SessionID  string    `json:"session_id"`
	QuestionID string    `json:"question_id"`
	Values     []string  `json:"values"`
	AnsweredAt time.Time `json:"answered_at"`
}

// redis key patterns
const (
	// quiz:{sessionID}:answers - hash of question_id -> answer JSON
	keyQuizAnswers = "quiz:%s:answers"

	// dirty_quiz_sessions - set of session IDs with unflushed answers
	keyDirtyQuizSessions = "dirty_quiz_sessions"

	// recs:{token} - cached recommendation payload as JSON
	keyRecommendations = "recs:%s"
)

const defaultRecommendationTTL = 15 * time.Minute
