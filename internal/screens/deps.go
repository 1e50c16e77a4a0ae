// Package screens holds one screen per navigation step. Every screen renders
// from the shared session and reports transitions by mutating it; the app
// model swaps screens when the step changes.
package screens

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/auth"
	"github.com/bacdz/eduai/internal/curriculum"
	"github.com/bacdz/eduai/internal/extract"
	"github.com/bacdz/eduai/internal/generate"
	"github.com/bacdz/eduai/internal/gradebook"
	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/llm"
	"github.com/bacdz/eduai/internal/nav"
	"github.com/bacdz/eduai/internal/store"
	"github.com/bacdz/eduai/internal/ui/layout"
)

// dbTimeout bounds local persistence calls issued from the UI.
const dbTimeout = 5 * time.Second

// Deps is everything the screens share. Gen is nil when no LLM credentials
// were found; generation screens then show a configuration hint instead.
type Deps struct {
	Session   *nav.Session
	Identity  *auth.Identity
	Catalog   *curriculum.Catalog
	Filter    *curriculum.Filter
	Gen       *generate.Service
	Auth      *auth.Service
	Events    store.EventRepo
	Gradebook *gradebook.Service
	Extract   *extract.Extractor
	Timeout   time.Duration
}

// genContext assembles the generation grounding from the current session.
func (d *Deps) genContext() generate.Context {
	s := d.Session
	c := generate.Context{
		Mode:        s.Mode.String(),
		ProgramText: s.ProgramText,
	}
	if s.Specialty != nil {
		c.SpecialtyName = s.Specialty.Name
	}
	if s.Subject != nil {
		c.SubjectID = s.Subject.ID
		c.SubjectName = s.Subject.Name
		c.Scientific = s.Subject.Scientific
	}
	if s.Lesson != nil {
		c.LessonTitle = s.Lesson.Title
		c.LessonContent = s.Lesson.Content
	}
	return c
}

// genTimeout bounds one generation call including retries.
func (d *Deps) genTimeout() time.Duration {
	if d.Timeout > 0 {
		return d.Timeout
	}
	return 90 * time.Second
}

// recordSession appends a session milestone event. Failures only warn; the
// UI never blocks on the event log.
func (d *Deps) recordSession(action string) tea.Cmd {
	if d.Events == nil {
		return nil
	}
	s := d.Session
	data := store.SessionEventData{
		SessionID: s.ID,
		Action:    action,
		Role:      string(s.Role),
	}
	if s.Specialty != nil {
		data.SpecialtyID = s.Specialty.ID
	}
	if s.Subject != nil {
		data.SubjectID = s.Subject.ID
	}
	if s.Lesson != nil {
		data.LessonID = s.Lesson.ID
	}
	if action == "enter-mode" {
		data.Mode = s.Mode.String()
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		if err := d.Events.AppendSessionEvent(ctx, data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: record session event: %v\n", err)
		}
		return nil
	}
}

// RecordSessionEnd logs the end-of-session milestone before the program
// quits.
func (d *Deps) RecordSessionEnd() tea.Cmd {
	return d.recordSession("end")
}

// saveIdentity persists the identity's context in the background.
func saveIdentity(d *Deps) tea.Cmd {
	ident := *d.Identity
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		if err := d.Auth.SaveContext(ctx, &ident); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		return nil
	}
}

// selectionHints is the footer for plain menu screens.
func selectionHints(back string) []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: i18n.T("common.select")},
		{Key: "Enter", Description: i18n.T("common.select")},
		{Key: "Esc", Description: back},
		{Key: "Ctrl+C", Description: i18n.T("common.quit")},
	}
}

// errText maps a generation error to the localized message shown in place of
// the artifact.
func errText(err error) string {
	var noCreds *llm.ErrNoCredentials
	var rateLimit *llm.ErrRateLimit
	switch {
	case errors.As(err, &noCreds):
		return i18n.T("error.no-credentials")
	case errors.As(err, &rateLimit):
		return i18n.T("error.rate-limit")
	default:
		return i18n.T("error.generation")
	}
}
