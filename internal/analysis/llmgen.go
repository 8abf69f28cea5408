package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/studialabs/studia/internal/intake"
	"github.com/studialabs/studia/internal/llm"
	"github.com/studialabs/studia/internal/pdftext"
)

// Question mix constants, kept from the original analysis service:
// total count scales with document length; half the questions are
// choice, a third short, the remainder essay.
const (
	smallDocChars  = 1000
	mediumDocChars = 3000

	smallDocQuestions  = 6
	mediumDocQuestions = 12
	largeDocQuestions  = 18

	// maxPromptChars caps how much document text goes into the prompt.
	maxPromptChars = 15000
)

const analyzeSystemPrompt = `You are a professional study tutor. Given the text of a learning document you produce:
1. A summary of its key content in 3-5 sentences.
2. Exam questions that check the reader's understanding of the document.

Rules:
- Generate exactly the requested number of questions of each type.
- "choice" questions carry exactly 4 options and the zero-based index of the correct one.
- "short" questions expect a single word or short phrase; "answer" holds that text.
- "essay" questions ask for free-form writing and carry no answer.
- Every question carries an explanation of the correct answer and, when possible, a "pdfRef" naming the page or keyword the question is drawn from.
- Number ids from 1 in order.
- Write questions in the same language as the document.`

// LLMConfig tunes the built-in analyzer.
type LLMConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultLLMConfig returns defaults sized for an 18-question quiz.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		MaxTokens:   8192,
		Temperature: 0.4,
	}
}

// LLMAnalyzer is the built-in analysis pipeline: extract the PDF text,
// prompt a model provider for the summary and questions, validate the
// structured output and run it through the same quiz parser as the
// remote path.
type LLMAnalyzer struct {
	provider llm.Provider
	config   LLMConfig
}

// NewLLMAnalyzer creates an LLMAnalyzer on the given provider.
func NewLLMAnalyzer(provider llm.Provider, cfg LLMConfig) *LLMAnalyzer {
	return &LLMAnalyzer{provider: provider, config: cfg}
}

func (a *LLMAnalyzer) Analyze(ctx context.Context, doc *intake.Document) (*Result, error) {
	text, err := pdftext.Extract(doc.Path)
	if err != nil {
		return nil, fmt.Errorf("extract document text: %w", err)
	}

	ctx = llm.WithPurpose(ctx, "analysis")

	req := llm.Request{
		System: analyzeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnalyzeMessage(text)},
		},
		Schema:      quizSchema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, &CallError{Err: err}
	}

	var p payload
	if err := json.Unmarshal(resp.Content, &p); err != nil {
		return nil, fmt.Errorf("parse model response: %w", err)
	}

	return resultFrom(p)
}

// QuestionCounts returns the per-type question counts for a document of
// textLen characters.
func QuestionCounts(textLen int) (choice, short, essay int) {
	total := largeDocQuestions
	switch {
	case textLen < smallDocChars:
		total = smallDocQuestions
	case textLen < mediumDocChars:
		total = mediumDocQuestions
	}

	choice = total / 2
	short = total / 3
	essay = total - choice - short
	return choice, short, essay
}

func buildAnalyzeMessage(text string) string {
	choice, short, essay := QuestionCounts(len(text))

	if len(text) > maxPromptChars {
		cut := maxPromptChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d questions in total:\n", choice+short+essay)
	fmt.Fprintf(&b, "- choice: %d\n", choice)
	fmt.Fprintf(&b, "- short: %d\n", short)
	fmt.Fprintf(&b, "- essay: %d\n", essay)
	b.WriteString("\nDocument text:\n")
	b.WriteString(text)
	return b.String()
}
