package screens

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/auth"
	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/ui/components"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

// LessonSelect picks a lesson from the units visible to the current track.
type LessonSelect struct {
	deps *Deps
	menu components.Menu
}

var _ screen.Screen = (*LessonSelect)(nil)

// NewLessonSelect builds the unit/lesson menu from the filtered curriculum.
// Unit titles render as headers between their lessons.
func NewLessonSelect(deps *Deps) *LessonSelect {
	s := deps.Session
	specialtyID := ""
	if s.Specialty != nil {
		specialtyID = s.Specialty.ID
	}

	var items []components.MenuItem
	for _, unit := range deps.Filter.VisibleUnits(s.Subject, specialtyID, s.Role) {
		semester := i18n.Td("exam.semester", map[string]any{"Semester": unit.Semester})
		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("%s · %s", unit.Title, semester),
			Disabled: true,
		})
		for i := range unit.Lessons {
			lesson := unit.Lessons[i]
			items = append(items, components.MenuItem{
				Label: lesson.Title,
				Action: func() tea.Cmd {
					_ = deps.Session.PickLesson(&lesson)
					return nil
				},
			})
		}
	}

	return &LessonSelect{deps: deps, menu: components.NewMenu(items)}
}

func (l *LessonSelect) Init() tea.Cmd {
	return nil
}

func (l *LessonSelect) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		if l.deps.Session.Role == auth.RoleTeacher {
			_ = l.deps.Session.BackToDashboard()
		} else {
			l.deps.Session.ChangeSubject()
		}
		return l, nil
	}
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LessonSelect) View(width, height int) string {
	title := theme.Title.Render(i18n.T("lesson.title"))
	if l.deps.Session.Subject != nil {
		title += "\n" + theme.Subtitle.Render(l.deps.Session.Subject.Name)
	}
	return layout.Centered(title+"\n\n"+l.menu.View(), width, height)
}

func (l *LessonSelect) Title() string {
	return i18n.T("lesson.title")
}

func (l *LessonSelect) KeyHints() []layout.KeyHint {
	return selectionHints(i18n.T("common.change-subject"))
}
