package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts the external resume-scoring model. The returned payload is
// untrusted input: callers must normalize it before use.
type Client interface {
	ScoreResume(ctx context.Context, input ScoreInput) (json.RawMessage, error)
}

// ScoreInput captures the inputs needed for resume scoring.
type ScoreInput struct {
	ResumeText string
	FileName   string
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// ScoreResume returns ErrNotConfigured.
func (PlaceholderClient) ScoreResume(ctx context.Context, input ScoreInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotConfigured
}
