package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/scentmatch/server/internal/logger"
)

// handles Redis-backed buffering for quiz answers plus short-lived caching
// of recommendation payloads
type QuizBuffer struct {
	client *redis.Client
	recTTL time.Duration
}

// creates a new quiz buffer with a Redis connection
func NewQuizBuffer(redisURL string) (*QuizBuffer, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	// test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis")

	return &QuizBuffer{
		client: client,
		recTTL: defaultRecommendationTTL,
	}, nil
}

// closes the Redis connection
func (b *QuizBuffer) Close() error {
	return b.client.Close()
}

// stores an answer and marks the session dirty; answering the same question
// again overwrites the buffered value
func (b *QuizBuffer) SaveAnswer(ctx context.Context, answer *BufferedAnswer) error {
	answerJSON, err := json.Marshal(answer)
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}

	pipe := b.client.Pipeline()

	answersKey := fmt.Sprintf(keyQuizAnswers, answer.SessionID)
	pipe.HSet(ctx, answersKey, answer.QuestionID, answerJSON)
	pipe.SAdd(ctx, keyDirtyQuizSessions, answer.SessionID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to buffer answer in redis: %w", err)
	}

	return nil
}

// retrieves buffered answers for a session, keyed by question id
// returns an empty map if nothing is buffered (caller should check postgres)
func (b *QuizBuffer) GetAnswers(ctx context.Context, sessionID string) (map[string][]string, error) {
	answersKey := fmt.Sprintf(keyQuizAnswers, sessionID)

	fields, err := b.client.HGetAll(ctx, answersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get answers from redis: %w", err)
	}

	answers := make(map[string][]string, len(fields))

	for questionID, answerJSON := range fields {
		var answer BufferedAnswer
		if err := json.Unmarshal([]byte(answerJSON), &answer); err != nil {
			logger.ErrorErr(err, "failed to unmarshal buffered answer", "session_id", sessionID)
			continue
		}

		answers[questionID] = answer.Values
	}

	return answers, nil
}

// returns all session IDs with unflushed answers
func (b *QuizBuffer) GetDirtySessions(ctx context.Context) ([]string, error) {
	return b.client.SMembers(ctx, keyDirtyQuizSessions).Result()
}

// retrieves all buffered answers for a session and clears them,
// removing the session from the dirty set
func (b *QuizBuffer) FlushAnswers(ctx context.Context, sessionID string) ([]BufferedAnswer, error) {
	answersKey := fmt.Sprintf(keyQuizAnswers, sessionID)

	fields, err := b.client.HGetAll(ctx, answersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get answers for flush: %w", err)
	}

	if len(fields) == 0 {
		b.client.SRem(ctx, keyDirtyQuizSessions, sessionID) //nolint:errcheck // best-effort cleanup
		return nil, nil
	}

	answers := make([]BufferedAnswer, 0, len(fields))

	for _, answerJSON := range fields {
		var answer BufferedAnswer
		if err := json.Unmarshal([]byte(answerJSON), &answer); err != nil {
			logger.ErrorErr(err, "failed to unmarshal buffered answer", "session_id", sessionID)
			continue
		}

		answers = append(answers, answer)
	}

	// clear the hash and remove from dirty set
	pipe := b.client.Pipeline()
	pipe.Del(ctx, answersKey)
	pipe.SRem(ctx, keyDirtyQuizSessions, sessionID)
	pipe.Exec(ctx) //nolint:errcheck,gosec // best-effort cleanup, answers already retrieved

	return answers, nil
}

// removes all buffered data for a session (call after analysis or expiry)
func (b *QuizBuffer) ClearSession(ctx context.Context, sessionID, token string) error {
	pipe := b.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf(keyQuizAnswers, sessionID))
	pipe.SRem(ctx, keyDirtyQuizSessions, sessionID)

	if token != "" {
		pipe.Del(ctx, fmt.Sprintf(keyRecommendations, token))
	}

	_, err := pipe.Exec(ctx)
	return err
}

// caches a recommendation payload under the session token
func (b *QuizBuffer) SetRecommendations(ctx context.Context, token string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	key := fmt.Sprintf(keyRecommendations, token)
	if err := b.client.Set(ctx, key, data, b.recTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache recommendations: %w", err)
	}

	return nil
}

// loads a cached recommendation payload; found is false on a cache miss
func (b *QuizBuffer) GetRecommendations(ctx context.Context, token string, dest any) (bool, error) {
	key := fmt.Sprintf(keyRecommendations, token)

	data, err := b.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to get cached recommendations: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached recommendations: %w", err)
	}

	return true, nil
}

// returns the underlying Redis client for advanced operations
func (b *QuizBuffer) Client() *redis.Client {
	return b.client
}
