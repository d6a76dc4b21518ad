package quiz

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSessionNotFound = errors.New("quiz session not found")
	ErrAlreadyClaimed  = errors.New("quiz session already claimed")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// creates a new anonymous quiz session with a fresh token
func (r *Repository) CreateSession(ctx context.Context) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	row := r.db.QueryRow(ctx, queryCreateSession, token)
	return scanSession(row)
}

func (r *Repository) GetByToken(ctx context.Context, token string) (*Session, error) {
	row := r.db.QueryRow(ctx, queryGetByToken, token)

	session, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}

	return session, err
}

// records an answer; answering the same question again overwrites it
func (r *Repository) SaveResponse(ctx context.Context, sessionID, questionID string, values []string) error {
	if _, err := r.db.Exec(ctx, querySaveResponse, sessionID, questionID, values); err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}

	return nil
}

func (r *Repository) ListResponses(ctx context.Context, sessionID string) ([]Response, error) {
	rows, err := r.db.Query(ctx, queryListResponses, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	defer rows.Close()

	var responses []Response

	for rows.Next() {
		var resp Response
		if err := rows.Scan(&resp.QuestionID, &resp.Values, &resp.AnsweredAt); err != nil {
			return nil, err
		}

		responses = append(responses, resp)
	}

	return responses, rows.Err()
}

func (r *Repository) TouchSession(ctx context.Context, token string) error {
	tag, err := r.db.Exec(ctx, queryTouchSession, token)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// stores analysis results and flips the session to analyzed
func (r *Repository) MarkAnalyzed(ctx context.Context, token string, results Results) (*Session, error) {
	row := r.db.QueryRow(ctx, queryMarkAnalyzed, results.Archetype, results, token)

	session, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}

	return session, err
}

// attaches an anonymous session to a user account
func (r *Repository) Claim(ctx context.Context, token, userID string) (*Session, error) {
	row := r.db.QueryRow(ctx, queryClaim, userID, token)

	session, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		// distinguish missing from already-claimed for a useful error
		if _, getErr := r.GetByToken(ctx, token); getErr == nil {
			return nil, ErrAlreadyClaimed
		}

		return nil, ErrSessionNotFound
	}

	return session, err
}

// removes unclaimed in-progress sessions inactive since before the threshold
func (r *Repository) DeleteStale(ctx context.Context, threshold time.Time) (int, error) {
	tag, err := r.db.Exec(ctx, queryDeleteStale, threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale sessions: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func scanSession(row pgx.Row) (*Session, error) {
	var session Session

	err := row.Scan(
		&session.ID,
		&session.Token,
		&session.UserID,
		&session.Status,
		&session.Archetype,
		&session.Results,
		&session.CreatedAt,
		&session.LastActivity,
		&session.AnalyzedAt,
	)

	if err != nil {
		return nil, err
	}

	return &session, nil
}

// generates a 32-character hex token for anonymous sessions
func generateToken() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}
