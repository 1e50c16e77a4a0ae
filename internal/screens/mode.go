package screens

import (
	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/auth"
	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/nav"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/ui/components"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

var studentModes = []nav.Mode{
	nav.ModeFast, nav.ModeThink, nav.ModeSearch, nav.ModeAnalyze,
	nav.ModeExercises, nav.ModeQuiz,
}

// ModeSelect picks the study mode for the resolved lesson.
type ModeSelect struct {
	deps *Deps
	menu components.Menu
}

var _ screen.Screen = (*ModeSelect)(nil)

// NewModeSelect lists the modes available to the current role.
func NewModeSelect(deps *Deps) *ModeSelect {
	modes := studentModes
	if deps.Session.Role == auth.RoleTeacher {
		modes = append(append([]nav.Mode{}, studentModes...), nav.ModeLessonPlan)
	}

	items := make([]components.MenuItem, 0, len(modes))
	for _, m := range modes {
		m := m
		items = append(items, components.MenuItem{
			Label: i18n.T("mode." + m.String()),
			Action: func() tea.Cmd {
				if err := deps.Session.EnterMode(m); err != nil {
					return nil
				}
				return deps.recordSession("enter-mode")
			},
		})
	}

	return &ModeSelect{deps: deps, menu: components.NewMenu(items)}
}

func (m *ModeSelect) Init() tea.Cmd {
	return nil
}

func (m *ModeSelect) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		m.deps.Session.ChangeLesson()
		return m, nil
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *ModeSelect) View(width, height int) string {
	title := theme.Title.Render(i18n.T("mode.title"))
	if m.deps.Session.Lesson != nil {
		title += "\n" + theme.Subtitle.Render(m.deps.Session.Lesson.Title)
	}
	return layout.Centered(title+"\n\n"+m.menu.View(), width, height)
}

func (m *ModeSelect) Title() string {
	return i18n.T("mode.title")
}

func (m *ModeSelect) KeyHints() []layout.KeyHint {
	return selectionHints(i18n.T("common.change-lesson"))
}
