package screens

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/llm"
	"github.com/bacdz/eduai/internal/nav"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/ui/components"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

// chatResultMsg carries one generated assistant turn.
type chatResultMsg struct {
	epoch   uint64
	content string
	err     error
}

// suggestionsMsg carries follow-up suggestions for a transcript entry.
// Failures are dropped; the transcript simply has no suggestions.
type suggestionsMsg struct {
	epoch     uint64
	messageID string
	items     []string
	err       error
}

// Chat is the conversational screen: the opening explanation (or lesson
// plan) followed by free questions grounded in the lesson.
type Chat struct {
	deps   *Deps
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*Chat)(nil)

// NewChat creates the chat screen for the session's current mode.
func NewChat(deps *Deps) *Chat {
	return &Chat{
		deps:  deps,
		input: components.NewTextInput("", i18n.T("chat.placeholder"), 500),
	}
}

// Init generates the mode's opening artifact when the transcript is empty.
func (c *Chat) Init() tea.Cmd {
	cmds := []tea.Cmd{c.input.Init()}
	if len(c.deps.Session.Transcript) == 0 {
		if cmd := c.generateOpening(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (c *Chat) generateOpening() tea.Cmd {
	deps := c.deps
	if deps.Gen == nil {
		c.errMsg = i18n.T("error.no-credentials")
		return nil
	}
	if !deps.Session.BeginGeneration(nav.SlotChat) {
		return nil
	}

	epoch := deps.Session.Epoch()
	mode := deps.Session.Mode
	gctx := deps.genContext()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.genTimeout())
		defer cancel()

		var content string
		var err error
		if mode == nav.ModeLessonPlan {
			content, err = deps.Gen.LessonPlan(ctx, gctx)
		} else {
			content, err = deps.Gen.ExplainLesson(ctx, gctx)
		}
		return chatResultMsg{epoch: epoch, content: content, err: err}
	}
}

func (c *Chat) ask(question string) tea.Cmd {
	deps := c.deps
	if deps.Gen == nil || question == "" {
		return nil
	}
	if !deps.Session.BeginGeneration(nav.SlotChat) {
		return nil
	}

	history := transcriptHistory(deps.Session.Transcript)
	deps.Session.AppendMessage("user", question, deps.Session.Mode)
	c.errMsg = ""

	epoch := deps.Session.Epoch()
	gctx := deps.genContext()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.genTimeout())
		defer cancel()
		content, err := deps.Gen.Chat(ctx, gctx, history, question)
		return chatResultMsg{epoch: epoch, content: content, err: err}
	}
}

func (c *Chat) generateSuggestions(messageID, lastContent string) tea.Cmd {
	deps := c.deps
	if deps.Gen == nil || deps.Session.Mode == nav.ModeLessonPlan {
		return nil
	}
	if !deps.Session.BeginGeneration(nav.SlotSuggestions) {
		return nil
	}

	epoch := deps.Session.Epoch()
	gctx := deps.genContext()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.genTimeout())
		defer cancel()
		items, err := deps.Gen.Suggestions(ctx, gctx, lastContent)
		return suggestionsMsg{epoch: epoch, messageID: messageID, items: items, err: err}
	}
}

func (c *Chat) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s := c.deps.Session

	switch msg := msg.(type) {
	case chatResultMsg:
		s.EndGeneration(nav.SlotChat, msg.epoch)
		if s.Stale(msg.epoch) {
			return c, nil
		}
		if msg.err != nil {
			c.errMsg = errText(msg.err)
			return c, nil
		}
		id := s.AppendMessage("assistant", msg.content, s.Mode)
		return c, c.generateSuggestions(id, msg.content)

	case suggestionsMsg:
		s.EndGeneration(nav.SlotSuggestions, msg.epoch)
		if s.Stale(msg.epoch) || msg.err != nil {
			return c, nil
		}
		s.AttachSuggestions(msg.messageID, msg.items)
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			s.ChangeMode()
			return c, nil
		case "enter":
			question := strings.TrimSpace(c.input.Value())
			c.input.Reset()
			return c, c.ask(question)
		case "1", "2", "3":
			// Empty input means the digit picks a suggestion.
			if strings.TrimSpace(c.input.Value()) == "" {
				if q := c.pickSuggestion(msg.String()); q != "" {
					return c, c.ask(q)
				}
			}
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// pickSuggestion maps a digit key to the last assistant message's
// suggestions.
func (c *Chat) pickSuggestion(key string) string {
	transcript := c.deps.Session.Transcript
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Role != "assistant" {
			continue
		}
		idx := int(key[0] - '1')
		if idx >= 0 && idx < len(transcript[i].Suggestions) {
			return transcript[i].Suggestions[idx]
		}
		return ""
	}
	return ""
}

func (c *Chat) View(width, height int) string {
	s := c.deps.Session
	wrap := lipgloss.NewStyle().Width(width - 6)

	var b strings.Builder
	for _, m := range s.Transcript {
		if m.Role == "user" {
			b.WriteString(theme.Selected.Render("🧑 ") + wrap.Foreground(theme.Text).Render(m.Content))
		} else {
			b.WriteString(theme.Subtitle.Render("🤖 ") + wrap.Foreground(theme.Text).Render(m.Content))
			if len(m.Suggestions) > 0 {
				b.WriteString("\n" + theme.Hint.Render(i18n.T("chat.suggestions")))
				for i, sg := range m.Suggestions {
					b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("  %d. %s", i+1, sg)))
				}
			}
		}
		b.WriteString("\n\n")
	}

	if s.Generating(nav.SlotChat) {
		b.WriteString(theme.Busy.Render(i18n.T("chat.generating")) + "\n\n")
	}
	if c.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(c.errMsg) + "\n\n")
	}

	content := tailLines(b.String(), height-4)
	return content + "\n" + c.input.View()
}

// tailLines keeps the last n lines so the latest turn stays visible.
func tailLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}

func (c *Chat) Title() string {
	return i18n.T("mode." + c.deps.Session.Mode.String())
}

func (c *Chat) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: i18n.T("common.select")},
		{Key: "1-3", Description: i18n.T("chat.suggestions")},
		{Key: "Esc", Description: i18n.T("common.back")},
		{Key: "Ctrl+C", Description: i18n.T("common.quit")},
	}
}

// transcriptHistory converts the transcript to provider messages.
func transcriptHistory(transcript []nav.Message) []llm.Message {
	out := make([]llm.Message, 0, len(transcript))
	for _, m := range transcript {
		role := llm.RoleUser
		if m.Role == "assistant" {
			role = llm.RoleAssistant
		}
		out = append(out, llm.Message{Role: role, Content: m.Content})
	}
	return out
}
