package screens

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bacdz/eduai/internal/generate"
	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/nav"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/ui/components"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

type examMsg struct {
	epoch    uint64
	semester int
	exam     *generate.Exam
	err      error
}

// ExamFlow builds a full semester exam: pick the semester, generate the
// paper over every lesson in it, optionally reveal the marking scheme.
type ExamFlow struct {
	deps   *Deps
	menu   components.Menu
	scroll int
	errMsg string
}

var _ screen.Screen = (*ExamFlow)(nil)

// NewExamFlow creates the exam builder screen.
func NewExamFlow(deps *Deps) *ExamFlow {
	e := &ExamFlow{deps: deps}

	items := make([]components.MenuItem, 0, 3)
	for semester := 1; semester <= 3; semester++ {
		semester := semester
		items = append(items, components.MenuItem{
			Label:  i18n.Td("exam.semester", map[string]any{"Semester": semester}),
			Action: func() tea.Cmd { return e.generate(semester) },
		})
	}
	e.menu = components.NewMenu(items)
	return e
}

func (e *ExamFlow) Init() tea.Cmd {
	return nil
}

func (e *ExamFlow) generate(semester int) tea.Cmd {
	deps := e.deps
	if deps.Gen == nil {
		e.errMsg = i18n.T("error.no-credentials")
		return nil
	}
	if deps.Session.Subject == nil {
		return nil
	}
	titles := deps.Session.Subject.LessonsForSemester(semester)
	if len(titles) == 0 {
		e.errMsg = i18n.T("error.generation")
		return nil
	}
	if !deps.Session.BeginGeneration(nav.SlotExam) {
		return nil
	}
	e.errMsg = ""

	epoch := deps.Session.Epoch()
	gctx := deps.genContext()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.genTimeout())
		defer cancel()
		exam, err := deps.Gen.Exam(ctx, gctx, semester, titles)
		return examMsg{epoch: epoch, semester: semester, exam: exam, err: err}
	}
}

func (e *ExamFlow) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s := e.deps.Session

	switch msg := msg.(type) {
	case examMsg:
		s.EndGeneration(nav.SlotExam, msg.epoch)
		if s.Stale(msg.epoch) {
			return e, nil
		}
		if msg.err != nil {
			e.errMsg = errText(msg.err)
			return e, nil
		}
		s.Exam = &nav.ExamSheet{
			Semester:     msg.semester,
			ExamText:     msg.exam.ExamText,
			SolutionText: msg.exam.SolutionText,
		}
		e.scroll = 0
		return e, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if s.Exam != nil {
				// First esc drops the paper, second leaves the flow.
				s.Exam = nil
				return e, nil
			}
			_ = s.BackToDashboard()
			return e, nil
		case "s":
			if s.Exam != nil {
				s.Exam.SolutionRevealed = true
			}
			return e, nil
		case "up", "k":
			if s.Exam != nil {
				if e.scroll > 0 {
					e.scroll--
				}
				return e, nil
			}
		case "down", "j":
			if s.Exam != nil {
				e.scroll++
				return e, nil
			}
		}
	}

	if s.Exam == nil && !s.Generating(nav.SlotExam) {
		var cmd tea.Cmd
		e.menu, cmd = e.menu.Update(msg)
		return e, cmd
	}
	return e, nil
}

func (e *ExamFlow) View(width, height int) string {
	s := e.deps.Session

	if s.Generating(nav.SlotExam) {
		return layout.Centered(theme.Busy.Render(i18n.T("exam.generating")), width, height)
	}

	if s.Exam == nil {
		content := theme.Title.Render(i18n.T("exam.title")) + "\n\n" + e.menu.View()
		if e.errMsg != "" {
			content += "\n" + theme.Incorrect.Render(e.errMsg)
		}
		return layout.Centered(content, width, height)
	}

	wrap := lipgloss.NewStyle().Width(width - 4).Foreground(theme.Text)
	var b strings.Builder
	b.WriteString(theme.Title.Render(i18n.Td("exam.semester", map[string]any{"Semester": s.Exam.Semester})))
	b.WriteString("\n\n")
	b.WriteString(wrap.Render(s.Exam.ExamText))
	if s.Exam.SolutionRevealed {
		b.WriteString("\n\n" + theme.Title.Render(i18n.T("exercises.solution")))
		b.WriteString("\n" + wrap.Render(s.Exam.SolutionText))
	}
	if e.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(e.errMsg))
	}

	return scrollWindow(b.String(), e.scroll, height-2)
}

func (e *ExamFlow) Title() string {
	return i18n.T("exam.title")
}

func (e *ExamFlow) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "s", Description: i18n.T("exam.show-solution")},
		{Key: "↑↓", Description: i18n.T("common.select")},
		{Key: "Esc", Description: i18n.T("common.back")},
		{Key: "Ctrl+C", Description: i18n.T("common.quit")},
	}
}
