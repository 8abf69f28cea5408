package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/studialabs/studia/internal/quiz"
)

// payload mirrors the analysis service's response body. The remote
// service and the built-in model pipeline produce the same shape.
type payload struct {
	Message     string         `json:"message,omitempty"`
	TextSummary string         `json:"text_summary"`
	Questions   []quiz.Payload `json:"questions"`
}

// decodePayload parses a response body into a validated Result.
func decodePayload(raw []byte) (*Result, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode analysis payload: %w", err)
	}
	return resultFrom(p)
}

func resultFrom(p payload) (*Result, error) {
	qs, err := quiz.ParseQuiz(p.Questions)
	if err != nil {
		return nil, err
	}
	return &Result{
		Summary:   p.TextSummary,
		Questions: qs,
	}, nil
}
