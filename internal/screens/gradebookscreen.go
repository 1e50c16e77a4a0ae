package screens

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/store"
	"github.com/bacdz/eduai/internal/ui/components"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

type gradebookLoadedMsg struct {
	entries []*store.GradebookEntry
	err     error
}

type gradebookChangedMsg struct {
	err error
}

// GradebookScreen lists the teacher's recorded marks and adds new ones
// through an inline form. Exam marks and continuous-assessment marks share
// the form; the entry key picks the kind.
type GradebookScreen struct {
	deps    *Deps
	entries []*store.GradebookEntry
	cursor  int
	adding  bool
	kind    string
	form    []components.TextInput
	focus   int
	status  string
	errMsg  string
}

var _ screen.Screen = (*GradebookScreen)(nil)

// NewGradebookScreen creates the gradebook screen.
func NewGradebookScreen(deps *Deps) *GradebookScreen {
	return &GradebookScreen{deps: deps}
}

func (g *GradebookScreen) Init() tea.Cmd {
	return g.load()
}

func (g *GradebookScreen) load() tea.Cmd {
	deps := g.deps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		entries, err := deps.Gradebook.All(ctx)
		return gradebookLoadedMsg{entries: entries, err: err}
	}
}

func (g *GradebookScreen) openForm(kind string) tea.Cmd {
	g.adding = true
	g.kind = kind
	g.focus = 0
	g.status = ""
	g.errMsg = ""
	g.form = []components.TextInput{
		components.NewTextInput(i18n.T("gradebook.student"), "", 80),
		components.NewTextInput(i18n.T("gradebook.label"), "", 80),
		components.NewTextInput(i18n.T("gradebook.mark"), "14.5", 6),
		components.NewTextInput(i18n.T("gradebook.semester"), "1", 1),
		components.NewTextInput(i18n.T("gradebook.notes"), "", 200),
	}
	cmds := make([]tea.Cmd, 0, len(g.form))
	for i := range g.form {
		cmds = append(cmds, g.form[i].Init())
		if i > 0 {
			g.form[i].Blur()
		}
	}
	return tea.Batch(cmds...)
}

func (g *GradebookScreen) submit() tea.Cmd {
	deps := g.deps
	mark, err := strconv.ParseFloat(strings.TrimSpace(g.form[2].Value()), 64)
	if err != nil {
		g.errMsg = i18n.T("gradebook.invalid")
		return nil
	}
	semester, err := strconv.Atoi(strings.TrimSpace(g.form[3].Value()))
	if err != nil {
		g.errMsg = i18n.T("gradebook.invalid")
		return nil
	}

	entry := &store.GradebookEntry{
		Student:  strings.TrimSpace(g.form[0].Value()),
		Label:    strings.TrimSpace(g.form[1].Value()),
		Kind:     g.kind,
		Mark:     mark,
		Semester: semester,
		Notes:    strings.TrimSpace(g.form[4].Value()),
	}
	if deps.Session.Subject != nil {
		entry.SubjectID = deps.Session.Subject.ID
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		return gradebookChangedMsg{err: deps.Gradebook.Record(ctx, entry)}
	}
}

func (g *GradebookScreen) removeSelected() tea.Cmd {
	deps := g.deps
	if g.cursor >= len(g.entries) {
		return nil
	}
	id := g.entries[g.cursor].ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		return gradebookChangedMsg{err: deps.Gradebook.Remove(ctx, id)}
	}
}

func (g *GradebookScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gradebookLoadedMsg:
		if msg.err != nil {
			g.errMsg = msg.err.Error()
			return g, nil
		}
		g.entries = msg.entries
		if g.cursor >= len(g.entries) && g.cursor > 0 {
			g.cursor = len(g.entries) - 1
		}
		return g, nil

	case gradebookChangedMsg:
		if msg.err != nil {
			g.errMsg = i18n.T("gradebook.invalid")
			return g, nil
		}
		if g.adding {
			g.adding = false
			g.status = i18n.T("gradebook.saved")
		}
		g.errMsg = ""
		return g, g.load()

	case tea.KeyMsg:
		if g.adding {
			return g.updateForm(msg)
		}
		switch msg.String() {
		case "esc":
			_ = g.deps.Session.BackToDashboard()
			return g, nil
		case "a":
			return g, g.openForm(store.KindExam)
		case "c":
			return g, g.openForm(store.KindAssessment)
		case "d":
			return g, g.removeSelected()
		case "up", "k":
			if g.cursor > 0 {
				g.cursor--
			}
		case "down", "j":
			if g.cursor < len(g.entries)-1 {
				g.cursor++
			}
		}
	}
	return g, nil
}

func (g *GradebookScreen) updateForm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		g.adding = false
		return g, nil
	case "tab", "down":
		g.moveFocus(1)
		return g, nil
	case "shift+tab", "up":
		g.moveFocus(-1)
		return g, nil
	case "enter":
		if g.focus < len(g.form)-1 {
			g.moveFocus(1)
			return g, nil
		}
		return g, g.submit()
	}
	var cmd tea.Cmd
	g.form[g.focus], cmd = g.form[g.focus].Update(msg)
	return g, cmd
}

func (g *GradebookScreen) moveFocus(delta int) {
	g.form[g.focus].Blur()
	g.focus = (g.focus + delta + len(g.form)) % len(g.form)
	g.form[g.focus].Focus()
}

func (g *GradebookScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(i18n.T("gradebook.title")))
	b.WriteString("\n\n")

	if g.adding {
		formTitle := "gradebook.add"
		if g.kind == store.KindAssessment {
			formTitle = "gradebook.add-assessment"
		}
		b.WriteString(theme.Subtitle.Render(i18n.T(formTitle)))
		b.WriteString("\n\n")
		for i := range g.form {
			b.WriteString(g.form[i].View() + "\n")
		}
	} else {
		switch {
		case len(g.entries) == 0:
			b.WriteString(theme.Hint.Render(i18n.T("gradebook.empty")))
		default:
			for i, e := range g.entries {
				line := fmt.Sprintf("%s · %s · %.2f/20 · %s",
					e.Student, e.Label, e.Mark,
					i18n.Td("exam.semester", map[string]any{"Semester": e.Semester}))
				if e.Kind == store.KindAssessment {
					line += " · " + i18n.T("gradebook.kind-assessment")
				}
				if e.Notes != "" {
					line += " · " + e.Notes
				}
				if i == g.cursor {
					b.WriteString(theme.Selected.Render("▸ " + line))
				} else {
					b.WriteString(theme.Unselected.Render("  " + line))
				}
				b.WriteString("\n")
			}
		}
	}

	if g.status != "" {
		b.WriteString("\n" + theme.Correct.Render(g.status))
	}
	if g.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(g.errMsg))
	}
	return layout.Centered(b.String(), width, height)
}

func (g *GradebookScreen) Title() string {
	return i18n.T("gradebook.title")
}

func (g *GradebookScreen) KeyHints() []layout.KeyHint {
	if g.adding {
		return []layout.KeyHint{
			{Key: "Tab", Description: i18n.T("common.select")},
			{Key: "Enter", Description: i18n.T("common.select")},
			{Key: "Esc", Description: i18n.T("common.back")},
		}
	}
	return []layout.KeyHint{
		{Key: "a", Description: i18n.T("gradebook.add")},
		{Key: "c", Description: i18n.T("gradebook.add-assessment")},
		{Key: "d", Description: i18n.T("gradebook.remove")},
		{Key: "↑↓", Description: i18n.T("common.select")},
		{Key: "Esc", Description: i18n.T("common.back")},
	}
}
