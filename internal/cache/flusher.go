package cache

import (
	"context"
	"sync"
	"time"

	"github.com/scentmatch/server/internal/logger"
)

// persists buffered answers; satisfied by the quiz repository
type AnswerStore interface {
	SaveResponse(ctx context.Context, sessionID, questionID string, values []string) error
}

// handles periodic flushing of buffered quiz answers from Redis to Postgres
type Flusher struct {
	buffer   *QuizBuffer
	store    AnswerStore
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// creates a new flusher that periodically flushes Redis to Postgres
func NewFlusher(buffer *QuizBuffer, store AnswerStore, interval time.Duration) *Flusher {
	return &Flusher{
		buffer:   buffer,
		store:    store,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// begins the background flush loop
func (f *Flusher) Start() {
	f.wg.Add(1)
	go f.run()
	logger.Info("quiz answer flusher started", "interval", f.interval.String())
}

// gracefully stops the flusher and flushes any remaining answers
func (f *Flusher) Stop() {
	close(f.stopCh)
	f.wg.Wait()
	logger.Info("quiz answer flusher stopped")
}

func (f *Flusher) run() {
	defer f.wg.Done()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			f.flush()
		case <-f.stopCh:
			// final flush before stopping
			logger.Info("flushing remaining quiz answers before shutdown")
			f.flush()
			return
		}
	}
}

func (f *Flusher) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sessionIDs, err := f.buffer.GetDirtySessions(ctx)
	if err != nil {
		logger.ErrorErr(err, "failed to get dirty quiz sessions")
		return
	}

	if len(sessionIDs) == 0 {
		return
	}

	logger.Debug("flushing answers for sessions", "count", len(sessionIDs))

	for _, sessionID := range sessionIDs {
		f.flushSessionAnswers(ctx, sessionID)
	}
}

func (f *Flusher) flushSessionAnswers(ctx context.Context, sessionID string) {
	answers, err := f.buffer.FlushAnswers(ctx, sessionID)
	if err != nil {
		logger.ErrorErr(err, "failed to flush answers from buffer", "session_id", sessionID)
		return
	}

	for _, answer := range answers {
		if err := f.store.SaveResponse(ctx, answer.SessionID, answer.QuestionID, answer.Values); err != nil {
			logger.ErrorErr(err, "failed to persist answer to postgres",
				"session_id", answer.SessionID,
				"question_id", answer.QuestionID,
			)
			// re-buffer so we retry next flush
			f.buffer.SaveAnswer(ctx, &answer) //nolint:errcheck,gosec // best-effort retry
		}
	}
}

// immediately flushes all buffered answers for a specific session,
// used before analysis so scoring sees every answer
func (f *Flusher) FlushSession(ctx context.Context, sessionID string) error {
	answers, err := f.buffer.FlushAnswers(ctx, sessionID)
	if err != nil {
		return err
	}

	for _, answer := range answers {
		if err := f.store.SaveResponse(ctx, answer.SessionID, answer.QuestionID, answer.Values); err != nil {
			logger.ErrorErr(err, "failed to persist answer on session flush",
				"session_id", answer.SessionID,
				"question_id", answer.QuestionID,
			)
		}
	}

	return nil
}
