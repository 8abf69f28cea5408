package result

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/studialabs/studia/internal/review"
	"github.com/studialabs/studia/internal/session"
	"github.com/studialabs/studia/internal/ui/theme"
)

const meterWidth = 25

func (r *ResultScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n  " + r.tabs.View() + "\n\n")

	switch r.sess.ResultView() {
	case session.ViewScorecard:
		b.WriteString(r.renderScorecard(width))
	case session.ViewRetry:
		b.WriteString(r.renderRetry(width))
	default:
		b.WriteString(r.renderAnalysis(width))
	}

	return b.String()
}

func (r *ResultScreen) renderAnalysis(width int) string {
	var b strings.Builder

	scoreStyle := theme.Correct
	if !r.analysis.Passed {
		scoreStyle = theme.Incorrect
	}

	b.WriteString("  " + scoreStyle.Render(fmt.Sprintf("Score: %d / 100", r.analysis.Score)) + "\n\n")

	b.WriteString("  " + lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(r.analysis.Feedback) + "\n\n")

	for _, m := range r.analysis.Radar {
		b.WriteString("  " + renderMeter(m) + "\n")
	}

	if r.analysis.Summary != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Bold(true).
			Render("Document summary") + "\n\n")
		summary := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(width - 4).
			Render(r.analysis.Summary)
		b.WriteString("  " + strings.ReplaceAll(summary, "\n", "\n  ") + "\n")
	}

	return b.String()
}

// renderMeter draws one ability metric as a labelled horizontal bar.
func renderMeter(m review.Metric) string {
	filled := m.Value * meterWidth / 100
	if filled > meterWidth {
		filled = meterWidth
	}

	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", meterWidth-filled))

	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(15).
		Render(m.Label)

	value := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %3d", m.Value))

	return label + bar + value
}

func (r *ResultScreen) renderScorecard(width int) string {
	var b strings.Builder

	for _, entry := range r.scorecard {
		selected := entry.Position == r.sess.Selected()

		mark := theme.Incorrect.Render("✗")
		if entry.Correct {
			mark = theme.Correct.Render("✓")
		}

		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if selected {
			prefix = "  ▸ "
			style = style.Bold(true)
		}

		b.WriteString(prefix + mark + " " + style.Render(truncate(entry.Question.Common().Prompt, width-10)) + "\n")

		if selected {
			b.WriteString(r.renderDetail(entry, width))
		}
	}

	return b.String()
}

// renderDetail expands the selected scorecard entry with the response,
// the answer key and the explanation.
func (r *ResultScreen) renderDetail(entry review.ScorecardEntry, width int) string {
	detail := review.DetailFor(entry.Question)

	var b strings.Builder
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 12)

	response := entry.Response
	if !entry.Answered {
		response = "(no answer)"
	}
	b.WriteString("        " + dim.Render("Your answer: ") + body.Render(response) + "\n")

	if detail.CorrectAnswer != "" {
		b.WriteString("        " + dim.Render("Answer key:  ") + body.Render(detail.CorrectAnswer) + "\n")
	}
	if detail.Explanation != "" {
		expl := body.Render(detail.Explanation)
		b.WriteString("        " + dim.Render("Why: ") + strings.ReplaceAll(expl, "\n", "\n        ") + "\n")
	}
	b.WriteString("\n")

	return b.String()
}

func (r *ResultScreen) renderRetry(width int) string {
	if len(r.retry) == 0 {
		return "  " + theme.Correct.Render("Nothing to retry. Every question was answered correctly!") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d question(s) to revisit:", len(r.retry))) + "\n\n")

	for i, entry := range r.retry {
		selected := i == r.retryIndex()

		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if selected {
			prefix = "  ▸ "
			style = style.Bold(true)
		}

		b.WriteString(prefix + style.Render(truncate(entry.Question.Common().Prompt, width-8)) + "\n")

		if selected {
			detail := review.DetailFor(entry.Question)
			dim := lipgloss.NewStyle().Foreground(theme.TextDim)
			if detail.Explanation != "" {
				expl := lipgloss.NewStyle().
					Foreground(theme.TextDim).
					Width(width - 12).
					Render(detail.Explanation)
				b.WriteString("        " + dim.Render("Hint: ") + strings.ReplaceAll(expl, "\n", "\n        ") + "\n")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
