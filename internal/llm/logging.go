package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// RequestLog captures one model request for telemetry.
type RequestLog struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestLogger receives a RequestLog per model call. The telemetry
// store implements it.
type RequestLogger interface {
	LogRequest(ctx context.Context, log RequestLog) error
}

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label ("analysis", "preview", ...) to
// the context for telemetry.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label, "unknown" if unset.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// LoggingProvider decorates a Provider with per-request telemetry.
type LoggingProvider struct {
	inner  Provider
	logger RequestLogger
}

// WithLogging wraps a Provider with request logging. A nil logger
// disables logging without changing behavior.
func WithLogging(p Provider, logger RequestLogger) Provider {
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	if l.logger == nil {
		return resp, err
	}

	entry := RequestLog{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		entry.Model = resp.Model
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		entry.ErrorMessage = err.Error()
	}

	// Telemetry must never fail the request.
	if logErr := l.logger.LogRequest(ctx, entry); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log model request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
