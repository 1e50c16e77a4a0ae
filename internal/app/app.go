package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/nav"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/screens"
	"github.com/bacdz/eduai/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. It holds exactly one active screen,
// keyed by the session's navigation step, and swaps it whenever a screen
// transition mutates the step.
type AppModel struct {
	deps   *screens.Deps
	step   nav.Step
	active screen.Screen
	width  int
	height int
}

func newAppModel(deps *screens.Deps) AppModel {
	step := deps.Session.Step
	return AppModel{
		deps:   deps,
		step:   step,
		active: screenFor(step, deps),
	}
}

// screenFor builds the screen that owns a navigation step.
func screenFor(step nav.Step, deps *screens.Deps) screen.Screen {
	switch step {
	case nav.StepRoleSelection:
		return screens.NewRoleSelect(deps)
	case nav.StepSpecialty:
		return screens.NewSpecialtySelect(deps)
	case nav.StepSubject:
		return screens.NewSubjectSelect(deps)
	case nav.StepLesson:
		return screens.NewLessonSelect(deps)
	case nav.StepMode:
		return screens.NewModeSelect(deps)
	case nav.StepChat:
		return screens.NewChat(deps)
	case nav.StepExercises:
		return screens.NewExercises(deps)
	case nav.StepQuiz:
		return screens.NewQuizScreen(deps)
	case nav.StepExamFlow:
		return screens.NewExamFlow(deps)
	case nav.StepPDFUpload:
		return screens.NewPDFUpload(deps)
	case nav.StepTeacherSetup:
		return screens.NewTeacherSetup(deps)
	case nav.StepTeacherDashboard:
		return screens.NewDashboard(deps)
	case nav.StepProgramUpload:
		return screens.NewProgramUpload(deps)
	case nav.StepGradebook:
		return screens.NewGradebookScreen(deps)
	default:
		return screens.NewRoleSelect(deps)
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if cmd := m.deps.RecordSessionEnd(); cmd != nil {
				return m, tea.Sequence(cmd, tea.Quit)
			}
			return m, tea.Quit
		}
	}

	active, cmd := m.active.Update(msg)
	m.active = active

	// A transition moved the step; the new screen takes over.
	if step := m.deps.Session.Step; step != m.step {
		m.step = step
		m.active = screenFor(step, m.deps)
		return m, tea.Batch(cmd, m.active.Init())
	}
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	user := ""
	if m.deps.Identity != nil && m.deps.Session.Step != nav.StepRoleSelection {
		user = m.deps.Identity.Name
	}
	header := layout.RenderHeader(m.active.Title(), user, m.width)

	hints := defaultHints()
	if p, ok := m.active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.active.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func defaultHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: i18n.T("common.select")},
		{Key: "Enter", Description: i18n.T("common.select")},
		{Key: "Ctrl+C", Description: i18n.T("common.quit")},
	}
}

// Run starts the Bubble Tea program.
func Run(deps *screens.Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
