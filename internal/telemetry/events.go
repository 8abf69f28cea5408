package telemetry

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/studialabs/studia/internal/llm"
)

// Event kinds.
const (
	KindAnalysisRequested = "analysis_requested"
	KindAnalysisFailed    = "analysis_failed"
	KindQuizCompleted     = "quiz_completed"
	KindLLMRequest        = "llm_request"
)

// Recorder appends session events. A nil Recorder is valid everywhere
// and drops events.
type Recorder interface {
	AnalysisRequested(ctx context.Context, sessionID string) error
	AnalysisFailed(ctx context.Context, sessionID, reason string) error
	QuizCompleted(ctx context.Context, sessionID string, score int) error
}

// Recorder returns an event recorder backed by this store.
func (s *Store) Recorder() Recorder {
	return &recorder{db: s.db}
}

// RequestLogger returns an llm.RequestLogger backed by this store.
func (s *Store) RequestLogger() llm.RequestLogger {
	return &recorder{db: s.db}
}

type recorder struct {
	db *sql.DB
}

func (r *recorder) AnalysisRequested(ctx context.Context, sessionID string) error {
	return r.insert(ctx, KindAnalysisRequested, sessionID, "", sql.NullInt64{})
}

func (r *recorder) AnalysisFailed(ctx context.Context, sessionID, reason string) error {
	return r.insert(ctx, KindAnalysisFailed, sessionID, reason, sql.NullInt64{})
}

func (r *recorder) QuizCompleted(ctx context.Context, sessionID string, score int) error {
	return r.insert(ctx, KindQuizCompleted, sessionID, "", sql.NullInt64{Int64: int64(score), Valid: true})
}

func (r *recorder) insert(ctx context.Context, kind, sessionID, reason string, score sql.NullInt64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO events (id, session_id, kind, reason, score) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), sessionID, kind, reason, score,
	)
	if err != nil {
		return fmt.Errorf("append %s event: %w", kind, err)
	}
	return nil
}

// LogRequest implements llm.RequestLogger.
func (r *recorder) LogRequest(ctx context.Context, entry llm.RequestLog) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO events (id, session_id, kind, provider, model, purpose, in_tokens, out_tokens, latency_ms, success, error)
		 VALUES (?, '', ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), KindLLMRequest,
		entry.Provider, entry.Model, entry.Purpose,
		entry.InputTokens, entry.OutputTokens, entry.LatencyMs,
		entry.Success, entry.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm_request event: %w", err)
	}
	return nil
}

// Stats summarizes recorded attempts for the stats command.
type Stats struct {
	Attempts       int
	Completed      int
	AverageScore   float64
	FailuresByWhy  map[string]int
	ModelRequests  int
	ModelFailures  int
	TotalInTokens  int
	TotalOutTokens int
}

// Stats aggregates the event log.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{FailuresByWhy: make(map[string]int)}

	row := s.db.QueryRowContext(ctx,
		`SELECT
			COUNT(CASE WHEN kind = ? THEN 1 END),
			COUNT(CASE WHEN kind = ? THEN 1 END),
			COALESCE(AVG(CASE WHEN kind = ? THEN score END), 0)
		 FROM events`,
		KindAnalysisRequested, KindQuizCompleted, KindQuizCompleted,
	)
	if err := row.Scan(&st.Attempts, &st.Completed, &st.AverageScore); err != nil {
		return nil, fmt.Errorf("aggregate events: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT reason, COUNT(*) FROM events WHERE kind = ? GROUP BY reason`,
		KindAnalysisFailed,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregate failures: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var reason string
		var n int
		if err := rows.Scan(&reason, &n); err != nil {
			return nil, err
		}
		st.FailuresByWhy[reason] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	row = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(CASE WHEN success = 0 THEN 1 END),
			COALESCE(SUM(in_tokens), 0), COALESCE(SUM(out_tokens), 0)
		 FROM events WHERE kind = ?`,
		KindLLMRequest,
	)
	if err := row.Scan(&st.ModelRequests, &st.ModelFailures, &st.TotalInTokens, &st.TotalOutTokens); err != nil {
		return nil, fmt.Errorf("aggregate model requests: %w", err)
	}

	return st, nil
}
