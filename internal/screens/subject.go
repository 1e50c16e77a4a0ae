package screens

import (
	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/ui/components"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

// customTrackID is the personal track: no fixed subjects, the learner
// uploads their own material instead.
const customTrackID = "custom"

// SubjectSelect picks the subject within the chosen track.
type SubjectSelect struct {
	deps *Deps
	menu components.Menu
}

var _ screen.Screen = (*SubjectSelect)(nil)

// NewSubjectSelect lists the track's subjects. The personal track gets an
// upload entry instead of a subject list.
func NewSubjectSelect(deps *Deps) *SubjectSelect {
	var items []components.MenuItem

	specialtyID := ""
	if deps.Session.Specialty != nil {
		specialtyID = deps.Session.Specialty.ID
	}

	if specialtyID == customTrackID {
		items = append(items, components.MenuItem{
			Label: "📄  " + i18n.T("pdf.title"),
			Action: func() tea.Cmd {
				_ = deps.Session.OpenPDFUpload()
				return nil
			},
		})
	} else {
		for _, sub := range deps.Catalog.SubjectsFor(specialtyID) {
			sub := sub
			items = append(items, components.MenuItem{
				Label: sub.Icon + "  " + sub.Name,
				Action: func() tea.Cmd {
					_ = deps.Session.PickSubject(sub)
					return nil
				},
			})
		}
	}

	return &SubjectSelect{deps: deps, menu: components.NewMenu(items)}
}

func (s *SubjectSelect) Init() tea.Cmd {
	return nil
}

func (s *SubjectSelect) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		s.deps.Session.ChangeSpecialty()
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SubjectSelect) View(width, height int) string {
	title := theme.Title.Render(i18n.T("subject.title"))
	if s.deps.Session.Specialty != nil {
		title += "\n" + theme.Subtitle.Render(s.deps.Session.Specialty.Name)
	}
	return layout.Centered(title+"\n\n"+s.menu.View(), width, height)
}

func (s *SubjectSelect) Title() string {
	return i18n.T("subject.title")
}

func (s *SubjectSelect) KeyHints() []layout.KeyHint {
	return selectionHints(i18n.T("common.change-specialty"))
}
