package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/studialabs/studia/internal/quiz"
	"github.com/studialabs/studia/internal/review"
	"github.com/studialabs/studia/internal/session"
	"github.com/studialabs/studia/internal/ui/theme"
)

func typeLabel(t qz.Type) string {
	switch t {
	case qz.TypeChoice:
		return "Multiple choice"
	case qz.TypeShort:
		return "Short answer"
	case qz.TypeEssay:
		return "Essay"
	}
	return ""
}

func (q *QuizScreen) View(width, height int) string {
	if q.sess.State() == session.StateScoreModal {
		return q.renderScoreModal(width, height)
	}
	return q.renderQuestion(width, height)
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	current := q.sess.Current()
	if current == nil {
		return ""
	}

	var b strings.Builder

	total := len(q.sess.Quiz())
	answered := q.sess.Answers().Answered()

	progress := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d   ·   %d answered", q.sess.Position()+1, total, answered))
	badge := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(typeLabel(current.Type()))

	b.WriteString("\n  " + progress + "   " + badge + "\n\n")

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 4).
		Render(current.Common().Prompt)
	b.WriteString("  " + strings.ReplaceAll(prompt, "\n", "\n  "))
	b.WriteString("\n\n")

	var body string
	switch q.kind {
	case inputChoice:
		body = q.choice.View()
	case inputShort:
		body = "  " + q.short.View()
	case inputEssay:
		body = q.essay.View()
		body = "  " + strings.ReplaceAll(body, "\n", "\n  ")
	}
	b.WriteString(body)

	if ref := current.Common().Reference; ref != "" {
		b.WriteString("\n\n  " + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("From the document: "+ref))
	}

	return b.String()
}

// renderScoreModal shows the score card after submission, before the
// full result breakdown.
func (q *QuizScreen) renderScoreModal(width, height int) string {
	score, ok := q.sess.Score()
	if !ok {
		return ""
	}

	style := theme.Correct
	verdict := "Nice work!"
	if score < review.PassingScore {
		style = theme.Incorrect
		verdict = "Keep at it!"
	}

	card := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Quiz complete") + "\n\n" +
			style.Render(fmt.Sprintf("   %d / 100   ", score)) + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(verdict+" Press Enter to see the breakdown."),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
