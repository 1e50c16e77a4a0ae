package screens

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/nav"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

type exercisesMsg struct {
	epoch uint64
	text  string
	err   error
}

type solutionMsg struct {
	epoch uint64
	text  string
	err   error
}

// Exercises shows a generated practice paper; the model answer is generated
// on demand with "s".
type Exercises struct {
	deps   *Deps
	scroll int
	errMsg string
}

var _ screen.Screen = (*Exercises)(nil)

// NewExercises creates the exercises screen.
func NewExercises(deps *Deps) *Exercises {
	return &Exercises{deps: deps}
}

// Init generates the paper unless the session already holds one.
func (e *Exercises) Init() tea.Cmd {
	deps := e.deps
	if deps.Session.Exercises != nil {
		return nil
	}
	if deps.Gen == nil {
		e.errMsg = i18n.T("error.no-credentials")
		return nil
	}
	if !deps.Session.BeginGeneration(nav.SlotExercises) {
		return nil
	}

	epoch := deps.Session.Epoch()
	gctx := deps.genContext()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.genTimeout())
		defer cancel()
		text, err := deps.Gen.Exercises(ctx, gctx)
		return exercisesMsg{epoch: epoch, text: text, err: err}
	}
}

func (e *Exercises) revealSolution() tea.Cmd {
	deps := e.deps
	sheet := deps.Session.Exercises
	if sheet == nil || deps.Gen == nil {
		return nil
	}
	if sheet.Solution != "" {
		sheet.SolutionShown = true
		return nil
	}
	if !deps.Session.BeginGeneration(nav.SlotSolution) {
		return nil
	}

	epoch := deps.Session.Epoch()
	gctx := deps.genContext()
	exercises := sheet.Text
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.genTimeout())
		defer cancel()
		text, err := deps.Gen.Solution(ctx, gctx, exercises)
		return solutionMsg{epoch: epoch, text: text, err: err}
	}
}

func (e *Exercises) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s := e.deps.Session

	switch msg := msg.(type) {
	case exercisesMsg:
		s.EndGeneration(nav.SlotExercises, msg.epoch)
		if s.Stale(msg.epoch) {
			return e, nil
		}
		if msg.err != nil {
			e.errMsg = errText(msg.err)
			return e, nil
		}
		s.Exercises = &nav.ExerciseSheet{Text: msg.text}
		return e, nil

	case solutionMsg:
		s.EndGeneration(nav.SlotSolution, msg.epoch)
		if s.Stale(msg.epoch) {
			return e, nil
		}
		if msg.err != nil {
			e.errMsg = errText(msg.err)
			return e, nil
		}
		if s.Exercises != nil {
			s.Exercises.Solution = msg.text
			s.Exercises.SolutionShown = true
		}
		return e, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			s.ChangeMode()
		case "s":
			return e, e.revealSolution()
		case "up", "k":
			if e.scroll > 0 {
				e.scroll--
			}
		case "down", "j":
			e.scroll++
		}
	}

	return e, nil
}

func (e *Exercises) View(width, height int) string {
	s := e.deps.Session
	wrap := lipgloss.NewStyle().Width(width - 4).Foreground(theme.Text)

	var b strings.Builder
	switch {
	case s.Generating(nav.SlotExercises):
		b.WriteString(theme.Busy.Render(i18n.T("exercises.generating")))
	case e.errMsg != "":
		b.WriteString(theme.Incorrect.Render(e.errMsg))
	case s.Exercises != nil:
		b.WriteString(wrap.Render(s.Exercises.Text))
		if s.Generating(nav.SlotSolution) {
			b.WriteString("\n\n" + theme.Busy.Render(i18n.T("chat.generating")))
		}
		if s.Exercises.SolutionShown && s.Exercises.Solution != "" {
			b.WriteString("\n\n" + theme.Title.Render(i18n.T("exercises.solution")))
			b.WriteString("\n" + wrap.Render(s.Exercises.Solution))
		}
	}

	return scrollWindow(b.String(), e.scroll, height-2)
}

// scrollWindow shows n lines starting at offset, clamped to the content.
func scrollWindow(s string, offset, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if offset > len(lines)-n {
		offset = len(lines) - n
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + n
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}

func (e *Exercises) Title() string {
	return i18n.T("mode.exercises")
}

func (e *Exercises) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "s", Description: i18n.T("exercises.show-solution")},
		{Key: "↑↓", Description: i18n.T("common.select")},
		{Key: "Esc", Description: i18n.T("common.back")},
		{Key: "Ctrl+C", Description: i18n.T("common.quit")},
	}
}
