// Package llm abstracts the model providers the built-in analyzer can
// generate quizzes with. A Provider takes a prompt plus an optional JSON
// schema and returns validated structured output.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the analysis pipeline talks to.
type Provider interface {
	// Generate sends the request and returns structured output. When
	// Request.Schema is set the provider uses its native structured
	// output mechanism and the response Content is schema-validated
	// JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Quiz generation is single-turn, so
	// this is normally one user message carrying the document text.
	Messages []Message

	// Schema, when set, constrains the response to a JSON shape.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description guides the model.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated JSON (schema-validated when a Schema was
	// requested) or raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
