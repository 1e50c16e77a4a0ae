package screens

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/ui/components"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

type extractedMsg struct {
	title string
	text  string
	err   error
}

// PDFUpload turns a local document into a custom lesson for the personal
// track.
type PDFUpload struct {
	deps       *Deps
	input      components.TextInput
	extracting bool
	errMsg     string
}

var _ screen.Screen = (*PDFUpload)(nil)

// NewPDFUpload creates the custom lesson upload screen.
func NewPDFUpload(deps *Deps) *PDFUpload {
	return &PDFUpload{
		deps:  deps,
		input: components.NewTextInput(i18n.T("pdf.prompt"), "~/lesson.pdf", 300),
	}
}

func (p *PDFUpload) Init() tea.Cmd {
	return p.input.Init()
}

func (p *PDFUpload) extract(path string) tea.Cmd {
	extractor := p.deps.Extract
	p.extracting = true
	p.errMsg = ""
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), p.deps.genTimeout())
		defer cancel()
		text, err := extractor.Text(ctx, path)
		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return extractedMsg{title: title, text: text, err: err}
	}
}

func (p *PDFUpload) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s := p.deps.Session

	switch msg := msg.(type) {
	case extractedMsg:
		p.extracting = false
		if msg.err != nil {
			p.errMsg = i18n.T("error.extraction")
			return p, nil
		}
		if err := s.SetCustomLesson(msg.title, msg.text); err != nil {
			return p, nil
		}
		return p, p.deps.recordSession("custom-lesson")

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			_ = s.CancelUpload()
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

func (p *PDFUpload) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(i18n.T("pdf.title")))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	if p.extracting {
		b.WriteString("\n\n" + theme.Busy.Render(i18n.T("pdf.extracting")))
	}
	if p.errMsg != "" {
		b.WriteString("\n\n" + theme.Incorrect.Render(p.errMsg))
	}
	return layout.Centered(b.String(), width, height)
}

// expandHome resolves a leading ~/ against the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

func (p *PDFUpload) Title() string {
	return i18n.T("pdf.title")
}

func (p *PDFUpload) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: i18n.T("common.select")},
		{Key: "Esc", Description: i18n.T("common.back")},
		{Key: "Ctrl+C", Description: i18n.T("common.quit")},
	}
}
