// Package review derives the read-only result views from the session's
// quiz, answers and score. Views are recomputed on demand from a single
// correctness pass so they can never disagree with each other or with
// the stored score.
package review

import (
	"github.com/studialabs/studia/internal/quiz"
	"github.com/studialabs/studia/internal/scoring"
)

// PassingScore is the feedback threshold: at or above it the analysis
// view shows the positive message, below it the remedial one.
const PassingScore = 80

const (
	positiveFeedback = "You have a solid grasp of the document's key concepts. Compare your answers with the summary to make sure nothing slipped through."
	remedialFeedback = "Some core concepts still need work. Re-read the summary above, then walk through the retry list to close the gaps."
)

// Metric is one radar-chart axis with a value in [0,100].
type Metric struct {
	Label string
	Value int
}

// MetricConfig holds the radar derivation constants. Three axes derive
// from the score; the last two are fixed baselines. These are display
// constants, not hidden scoring logic.
type MetricConfig struct {
	ApplicationOffset int // added to score for the application axis
	ConceptOffset     int // added to score for the concept axis
	AnalysisBaseline  int
	ReasoningBaseline int
}

// DefaultMetricConfig matches the observed chart: application = score−10,
// concept = score+5, fixed analysis/reasoning baselines.
func DefaultMetricConfig() MetricConfig {
	return MetricConfig{
		ApplicationOffset: -10,
		ConceptOffset:     5,
		AnalysisBaseline:  80,
		ReasoningBaseline: 70,
	}
}

// AnalysisView is the data behind the result's analysis tab.
type AnalysisView struct {
	Summary  string
	Score    int
	Passed   bool
	Feedback string
	Radar    []Metric
}

// Analysis builds the analysis view for a summary and score.
func Analysis(summary string, score int, cfg MetricConfig) AnalysisView {
	passed := score >= PassingScore
	feedback := remedialFeedback
	if passed {
		feedback = positiveFeedback
	}

	return AnalysisView{
		Summary:  summary,
		Score:    score,
		Passed:   passed,
		Feedback: feedback,
		Radar: []Metric{
			{Label: "Comprehension", Value: clamp(score)},
			{Label: "Application", Value: clamp(score + cfg.ApplicationOffset)},
			{Label: "Concepts", Value: clamp(score + cfg.ConceptOffset)},
			{Label: "Analysis", Value: clamp(cfg.AnalysisBaseline)},
			{Label: "Reasoning", Value: clamp(cfg.ReasoningBaseline)},
		},
	}
}

// ScorecardEntry is one row of the scorecard: every question appears,
// correct or not.
type ScorecardEntry struct {
	Position int
	Question quiz.Question
	Response string
	Answered bool
	Correct  bool
}

// Detail expands one scorecard entry for the explanation pane.
type Detail struct {
	Question      quiz.Question
	CorrectAnswer string
	Explanation   string
	Reference     string
}

// Scorecard evaluates every question. The result always has exactly
// len(questions) entries, in quiz order.
func Scorecard(questions quiz.Quiz, answers map[int]string) ([]ScorecardEntry, error) {
	results, err := scoring.EvaluateAll(questions, answers)
	if err != nil {
		return nil, err
	}

	entries := make([]ScorecardEntry, len(questions))
	for i, q := range questions {
		response, answered := answers[i]
		entries[i] = ScorecardEntry{
			Position: i,
			Question: q,
			Response: response,
			Answered: answered,
			Correct:  results[i],
		}
	}
	return entries, nil
}

// DetailFor expands the question behind a scorecard entry.
func DetailFor(q quiz.Question) Detail {
	m := q.Common()
	return Detail{
		Question:      q,
		CorrectAnswer: quiz.AnswerText(q),
		Explanation:   m.Explanation,
		Reference:     m.Reference,
	}
}

// RetryEntry is one incorrectly answered question, keeping its original
// position and numbering.
type RetryEntry struct {
	Position int
	Question quiz.Question
}

// Retry returns the incorrect-only subsequence in original order. The
// retry view is read-only review; answering it again is not scored.
func Retry(questions quiz.Quiz, answers map[int]string) ([]RetryEntry, error) {
	results, err := scoring.EvaluateAll(questions, answers)
	if err != nil {
		return nil, err
	}

	var entries []RetryEntry
	for i, q := range questions {
		if !results[i] {
			entries = append(entries, RetryEntry{Position: i, Question: q})
		}
	}
	return entries, nil
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
