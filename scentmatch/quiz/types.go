package quiz

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

// quiz session lifecycle states
const (
	StatusInProgress = "in_progress"
	StatusAnalyzed   = "analyzed"
)

// a quiz run, anonymous until claimed by a user
type Session struct {
	ID           string     `json:"id"`
	Token        string     `json:"token"`
	UserID       *string    `json:"user_id,omitempty"`
	Status       string     `json:"status"` // in_progress, analyzed
	Archetype    string     `json:"archetype,omitempty"`
	Results      Results    `json:"results,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastActivity time.Time  `json:"last_activity"`
	AnalyzedAt   *time.Time `json:"analyzed_at,omitempty"`
}

// a single answered question
type Response struct {
	QuestionID string    `json:"question_id"`
	Values     []string  `json:"values"`
	AnsweredAt time.Time `json:"answered_at"`
}

// stored analysis output, serialized as JSONB
type Results struct {
	Archetype        string   `json:"archetype,omitempty"`
	ArchetypeTagline string   `json:"archetype_tagline,omitempty"`
	Gender           string   `json:"gender,omitempty"`
	ProfileText      string   `json:"profile_text,omitempty"`
	FragranceIDs     []string `json:"fragrance_ids,omitempty"`
	Insight          string   `json:"insight,omitempty"`
	InsightSource    string   `json:"insight_source,omitempty"` // ai, fallback
}

func (r Results) Value() (driver.Value, error) {
	bytes, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

func (r *Results) Scan(value interface{}) error {
	if value == nil {
		*r = Results{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}

	return json.Unmarshal(bytes, r)
}
