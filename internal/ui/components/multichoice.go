package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bacdz/eduai/internal/ui/theme"
)

var optionLabels = []string{"أ", "ب", "ج", "د"}

// MultiChoice selects one of up to four options. Correctness is never shown
// while answering; RenderReview shows it afterwards.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
}

// NewMultiChoice creates a selector for one question.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{Question: question, Options: options}
}

// Update handles keyboard navigation. Enter returns the chosen index through
// the second return value; -1 means no choice was made.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, int) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, -1
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		return m, m.Selected
	}

	return m, -1
}

// View renders the question with the current highlight.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		line := fmt.Sprintf("%s)  %s", optionLabels[i], opt)
		if i == m.Selected {
			s += theme.Selected.Render("  ▸ "+line) + "\n"
		} else {
			s += theme.Unselected.Render("    "+line) + "\n"
		}
	}
	return s
}

// RenderReview renders a question after submission, marking the correct
// option and the learner's pick.
func RenderReview(question string, options []string, correct, chosen int, explanation string) string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(question) + "\n\n"

	for i, opt := range options {
		line := fmt.Sprintf("    %s)  %s", optionLabels[i], opt)
		switch {
		case i == correct:
			s += theme.Correct.Render(line+"  ✓") + "\n"
		case i == chosen:
			s += theme.Incorrect.Render(line+"  ✗") + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		}
	}

	if explanation != "" {
		s += "\n" + theme.Hint.Render(explanation) + "\n"
	}
	return s
}
