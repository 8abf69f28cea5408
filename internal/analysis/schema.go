package analysis

import "github.com/studialabs/studia/internal/llm"

// quizSchema constrains the model's analysis output: a short summary
// plus the generated question list, matching the remote service's
// response shape.
var quizSchema = &llm.Schema{
	Name:        "study-quiz",
	Description: "A document summary and a set of generated study questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text_summary": map[string]any{
				"type":        "string",
				"description": "A 3-5 sentence summary of the document's key content",
			},
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, ids numbered from 1",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "Question number, unique within the quiz",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"choice", "short", "essay"},
							"description": "choice = pick an option, short = one-word answer, essay = free writing",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options for choice questions, empty otherwise",
						},
						"answer": map[string]any{
							"description": "Zero-based option index for choice, answer text for short, omitted for essay",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct, shown during review",
						},
						"pdfRef": map[string]any{
							"type":        "string",
							"description": "Page number or keyword locating the source passage",
						},
					},
					"required": []any{"id", "type", "question", "explanation"},
				},
			},
		},
		"required": []any{"text_summary", "questions"},
	},
}
