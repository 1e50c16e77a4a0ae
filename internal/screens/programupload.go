package screens

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/ui/components"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

type programMsg struct {
	text string
	err  error
}

// ProgramUpload loads the teacher's yearly program document. Its text grounds
// every later generation for the subject.
type ProgramUpload struct {
	deps       *Deps
	input      components.TextInput
	extracting bool
	saved      bool
	errMsg     string
}

var _ screen.Screen = (*ProgramUpload)(nil)

// NewProgramUpload creates the yearly program upload screen.
func NewProgramUpload(deps *Deps) *ProgramUpload {
	return &ProgramUpload{
		deps:  deps,
		input: components.NewTextInput(i18n.T("program.prompt"), "~/program.pdf", 300),
	}
}

func (p *ProgramUpload) Init() tea.Cmd {
	return p.input.Init()
}

func (p *ProgramUpload) extract(path string) tea.Cmd {
	extractor := p.deps.Extract
	p.extracting = true
	p.saved = false
	p.errMsg = ""
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), p.deps.genTimeout())
		defer cancel()
		text, err := extractor.Text(ctx, path)
		return programMsg{text: text, err: err}
	}
}

func (p *ProgramUpload) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s := p.deps.Session

	switch msg := msg.(type) {
	case programMsg:
		p.extracting = false
		if msg.err != nil {
			p.errMsg = i18n.T("error.extraction")
			return p, nil
		}
		s.ProgramText = msg.text
		p.deps.Identity.ProgramText = msg.text
		p.saved = true
		return p, saveIdentity(p.deps)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			_ = s.BackToDashboard()
			return p, nil
		case "enter":
			if p.extracting {
				return p, nil
			}
			path := strings.TrimSpace(p.input.Value())
			if path == "" {
				return p, nil
			}
			return p, p.extract(expandHome(path))
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *ProgramUpload) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(i18n.T("program.title")))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	switch {
	case p.extracting:
		b.WriteString("\n\n" + theme.Busy.Render(i18n.T("pdf.extracting")))
	case p.saved:
		b.WriteString("\n\n" + theme.Correct.Render(i18n.T("program.saved")))
	case p.errMsg != "":
		b.WriteString("\n\n" + theme.Incorrect.Render(p.errMsg))
	}
	return layout.Centered(b.String(), width, height)
}

func (p *ProgramUpload) Title() string {
	return i18n.T("program.title")
}

func (p *ProgramUpload) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: i18n.T("common.select")},
		{Key: "Esc", Description: i18n.T("common.back")},
		{Key: "Ctrl+C", Description: i18n.T("common.quit")},
	}
}
