package screens

import (
	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/ui/components"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

// SpecialtySelect picks the baccalaureate track.
type SpecialtySelect struct {
	deps *Deps
	menu components.Menu
}

var _ screen.Screen = (*SpecialtySelect)(nil)

// NewSpecialtySelect lists every track in the catalog.
func NewSpecialtySelect(deps *Deps) *SpecialtySelect {
	items := make([]components.MenuItem, 0, len(deps.Catalog.Specialties))
	for i := range deps.Catalog.Specialties {
		sp := &deps.Catalog.Specialties[i]
		items = append(items, components.MenuItem{
			Label: sp.Icon + "  " + sp.Name,
			Action: func() tea.Cmd {
				if err := deps.Session.PickSpecialty(sp); err != nil {
					return nil
				}
				deps.Identity.SpecialtyID = sp.ID
				return saveIdentity(deps)
			},
		})
	}
	return &SpecialtySelect{deps: deps, menu: components.NewMenu(items)}
}

func (s *SpecialtySelect) Init() tea.Cmd {
	return nil
}

func (s *SpecialtySelect) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		s.deps.Session.Logout()
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SpecialtySelect) View(width, height int) string {
	content := theme.Title.Render(i18n.T("specialty.title")) + "\n\n" + s.menu.View()
	return layout.Centered(content, width, height)
}

func (s *SpecialtySelect) Title() string {
	return i18n.T("specialty.title")
}

func (s *SpecialtySelect) KeyHints() []layout.KeyHint {
	return selectionHints(i18n.T("common.logout"))
}
