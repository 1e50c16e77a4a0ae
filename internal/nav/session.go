package nav

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bacdz/eduai/internal/auth"
	"github.com/bacdz/eduai/internal/curriculum"
	"github.com/bacdz/eduai/internal/quiz"
)

// Message is one entry in the chat transcript.
type Message struct {
	ID          string
	Role        string // "user" or "assistant"
	Content     string
	Mode        Mode
	Suggestions []string
	Timestamp   time.Time
}

// ExerciseSheet is the exercises-mode artifact. The solution is generated on
// demand and attached later.
type ExerciseSheet struct {
	Text          string
	Solution      string
	SolutionShown bool
}

// ExamSheet is the exam-builder artifact for one semester.
type ExamSheet struct {
	Semester         int
	ExamText         string
	SolutionText     string
	SolutionRevealed bool
}

// Session is the navigation state machine. All transitions run on the UI
// goroutine; artifacts belong to the context (specialty, subject, lesson)
// that produced them and are cleared whenever that context changes.
type Session struct {
	ID   string
	Step Step
	Role auth.Role

	Specialty *curriculum.Specialty
	Subject   *curriculum.Subject
	Lesson    *curriculum.Lesson
	Mode      Mode

	Transcript []Message
	Exercises  *ExerciseSheet
	Quiz       *quiz.Session
	Exam       *ExamSheet

	// ProgramText is the teacher's uploaded yearly program, used as extra
	// grounding for generation.
	ProgramText string

	epoch uint64
	// generating records the launch epoch per busy slot, so a context
	// change frees the slot without letting the superseded result clear a
	// newer request.
	generating map[Slot]uint64
}

// NewSession starts at role selection with nothing resolved.
func NewSession() *Session {
	return &Session{
		ID:         uuid.NewString(),
		Step:       StepRoleSelection,
		generating: make(map[Slot]uint64),
	}
}

// ContextResolved reports whether specialty, subject and lesson are all set.
// Generation is only reachable once this holds.
func (s *Session) ContextResolved() bool {
	return s.Specialty != nil && s.Subject != nil && s.Lesson != nil
}

// Epoch identifies the current context generation. It increments on every
// transition that invalidates artifacts; an in-flight generation captures the
// epoch at launch and its result is discarded when the epoch has moved on.
func (s *Session) Epoch() uint64 {
	return s.epoch
}

// Stale reports whether a result produced under the given epoch belongs to a
// superseded context.
func (s *Session) Stale(epoch uint64) bool {
	return s.epoch != epoch
}

// BeginGeneration marks the slot busy for the current context. It returns
// false when a request for the slot is already outstanding in this context;
// an entry left by a superseded context is overwritten.
func (s *Session) BeginGeneration(slot Slot) bool {
	if e, ok := s.generating[slot]; ok && e == s.epoch {
		return false
	}
	s.generating[slot] = s.epoch
	return true
}

// EndGeneration marks the slot idle. The epoch must be the one captured at
// launch; a stale result cannot free a newer request's slot.
func (s *Session) EndGeneration(slot Slot, epoch uint64) {
	if e, ok := s.generating[slot]; ok && e == epoch {
		delete(s.generating, slot)
	}
}

// Generating reports whether a request for the slot is outstanding in the
// current context.
func (s *Session) Generating(slot Slot) bool {
	e, ok := s.generating[slot]
	return ok && e == s.epoch
}

// ChooseRole leaves role selection. Students pick a track next; teachers go
// through the subject/track setup wizard.
func (s *Session) ChooseRole(role auth.Role) error {
	if s.Step != StepRoleSelection {
		return fmt.Errorf("role can only be chosen at role selection, not %s", s.Step)
	}
	s.Role = role
	if role == auth.RoleTeacher {
		s.Step = StepTeacherSetup
	} else {
		s.Step = StepSpecialty
	}
	return nil
}

// PickSpecialty resolves the track and moves to subject selection. Any
// selection below the track is invalidated.
func (s *Session) PickSpecialty(spec *curriculum.Specialty) error {
	if s.Step != StepSpecialty {
		return fmt.Errorf("cannot pick specialty at %s", s.Step)
	}
	if spec == nil {
		return fmt.Errorf("no specialty given")
	}
	s.Specialty = spec
	s.Subject = nil
	s.Lesson = nil
	s.clearArtifacts()
	s.Step = StepSubject
	return nil
}

// PickSubject resolves the subject and moves to lesson selection.
func (s *Session) PickSubject(sub *curriculum.Subject) error {
	if s.Step != StepSubject {
		return fmt.Errorf("cannot pick subject at %s", s.Step)
	}
	if sub == nil {
		return fmt.Errorf("no subject given")
	}
	if s.Specialty == nil {
		return fmt.Errorf("subject picked before specialty")
	}
	s.Subject = sub
	s.Lesson = nil
	s.clearArtifacts()
	s.Step = StepLesson
	return nil
}

// PickLesson resolves the lesson and moves to mode selection.
func (s *Session) PickLesson(l *curriculum.Lesson) error {
	if s.Step != StepLesson {
		return fmt.Errorf("cannot pick lesson at %s", s.Step)
	}
	if l == nil {
		return fmt.Errorf("no lesson given")
	}
	if s.Subject == nil {
		return fmt.Errorf("lesson picked before subject")
	}
	s.Lesson = l
	s.clearArtifacts()
	s.Step = StepMode
	return nil
}

// EnterMode activates a study mode. Generation-triggering modes require the
// full context; the exam builder needs only track and subject because it
// covers a whole semester.
func (s *Session) EnterMode(m Mode) error {
	if s.Step != StepMode && s.Step != StepTeacherDashboard {
		return fmt.Errorf("cannot enter a mode at %s", s.Step)
	}
	if m.TeacherOnly() && s.Role != auth.RoleTeacher {
		return fmt.Errorf("mode %s requires the teacher role", m)
	}

	if m == ModeExamBuilder {
		if s.Specialty == nil || s.Subject == nil {
			return fmt.Errorf("exam builder needs a track and subject")
		}
		s.Mode = m
		s.Step = StepExamFlow
		return nil
	}

	if !s.ContextResolved() {
		return fmt.Errorf("mode %s needs specialty, subject and lesson", m)
	}

	s.Mode = m
	switch {
	case m == ModeQuiz:
		s.Step = StepQuiz
	case m == ModeExercises:
		s.Step = StepExercises
	case m.Conversational():
		s.Step = StepChat
	default:
		return fmt.Errorf("unhandled mode %s", m)
	}
	return nil
}

// ChangeSpecialty returns to track selection from anywhere, dropping
// everything below it.
func (s *Session) ChangeSpecialty() {
	s.Specialty = nil
	s.Subject = nil
	s.Lesson = nil
	s.clearArtifacts()
	s.Step = StepSpecialty
}

// ChangeSubject returns to subject selection, dropping the lesson and all
// artifacts. Teachers land back on their dashboard instead.
func (s *Session) ChangeSubject() {
	s.Subject = nil
	s.Lesson = nil
	s.clearArtifacts()
	if s.Role == auth.RoleTeacher {
		s.Step = StepTeacherDashboard
		return
	}
	s.Step = StepSubject
}

// ChangeLesson returns to lesson selection, dropping the lesson's artifacts.
func (s *Session) ChangeLesson() {
	s.Lesson = nil
	s.clearArtifacts()
	s.Step = StepLesson
}

// ChangeMode returns to mode selection. The lesson stays; artifacts do not.
func (s *Session) ChangeMode() {
	s.clearArtifacts()
	s.Step = StepMode
}

// Logout clears everything and returns to role selection. The next sign-in
// gets a fresh session id; events never straddle two users.
func (s *Session) Logout() {
	s.ID = uuid.NewString()
	s.Role = ""
	s.Specialty = nil
	s.Subject = nil
	s.Lesson = nil
	s.Mode = ModeFast
	s.ProgramText = ""
	s.clearArtifacts()
	s.Step = StepRoleSelection
}

// SetTeacherContext finishes the teacher setup wizard: the chosen track and
// subject become the session context and the dashboard opens.
func (s *Session) SetTeacherContext(spec *curriculum.Specialty, sub *curriculum.Subject) error {
	if s.Role != auth.RoleTeacher {
		return fmt.Errorf("teacher setup requires the teacher role")
	}
	if s.Step != StepTeacherSetup && s.Step != StepTeacherDashboard {
		return fmt.Errorf("cannot finish teacher setup at %s", s.Step)
	}
	if spec == nil || sub == nil {
		return fmt.Errorf("teacher setup needs a track and subject")
	}
	s.Specialty = spec
	s.Subject = sub
	s.Lesson = nil
	s.clearArtifacts()
	s.Step = StepTeacherDashboard
	return nil
}

// BrowseLessons moves a teacher from the dashboard into lesson selection for
// their subject.
func (s *Session) BrowseLessons() error {
	if s.Step != StepTeacherDashboard {
		return fmt.Errorf("lesson browsing starts at the dashboard, not %s", s.Step)
	}
	s.Step = StepLesson
	return nil
}

// OpenProgramUpload moves a teacher to the yearly program upload screen.
func (s *Session) OpenProgramUpload() error {
	if s.Step != StepTeacherDashboard {
		return fmt.Errorf("program upload opens from the dashboard, not %s", s.Step)
	}
	s.Step = StepProgramUpload
	return nil
}

// OpenGradebook moves a teacher to the gradebook screen.
func (s *Session) OpenGradebook() error {
	if s.Step != StepTeacherDashboard {
		return fmt.Errorf("gradebook opens from the dashboard, not %s", s.Step)
	}
	s.Step = StepGradebook
	return nil
}

// BackToDashboard returns a teacher to the dashboard from a dashboard tool.
func (s *Session) BackToDashboard() error {
	if s.Role != auth.RoleTeacher {
		return fmt.Errorf("no dashboard for role %q", s.Role)
	}
	switch s.Step {
	case StepProgramUpload, StepGradebook, StepExamFlow, StepLesson:
		s.Step = StepTeacherDashboard
		return nil
	}
	return fmt.Errorf("cannot return to dashboard from %s", s.Step)
}

// OpenPDFUpload moves a student to the custom lesson upload screen.
func (s *Session) OpenPDFUpload() error {
	if s.Step != StepSubject {
		return fmt.Errorf("pdf upload opens from subject selection, not %s", s.Step)
	}
	s.Step = StepPDFUpload
	return nil
}

// CancelUpload abandons the custom lesson upload and returns to subject
// selection.
func (s *Session) CancelUpload() error {
	if s.Step != StepPDFUpload {
		return fmt.Errorf("no upload to cancel at %s", s.Step)
	}
	s.Step = StepSubject
	return nil
}

// SetCustomLesson turns uploaded document text into a synthetic subject and
// lesson, resolving the context for the personal track. The text becomes the
// lesson's content; ProgramText stays reserved for the teacher program.
func (s *Session) SetCustomLesson(title, content string) error {
	if s.Step != StepPDFUpload {
		return fmt.Errorf("custom lesson requires the upload screen, not %s", s.Step)
	}
	if content == "" {
		return fmt.Errorf("uploaded document has no text")
	}
	s.Subject = &curriculum.Subject{ID: "custom-pdf", Name: "ملف خاص", Icon: "📄"}
	s.Lesson = &curriculum.Lesson{ID: "custom-lesson", Title: title, Content: content}
	s.clearArtifacts()
	s.Step = StepMode
	return nil
}

// AppendMessage adds a transcript entry and returns its generated ID.
func (s *Session) AppendMessage(role, content string, mode Mode) string {
	msg := Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Mode:      mode,
		Timestamp: time.Now(),
	}
	s.Transcript = append(s.Transcript, msg)
	return msg.ID
}

// AttachSuggestions sets follow-up suggestions on a transcript entry. A
// missing ID is ignored: the message may have been cleared by navigation
// while the suggestions were being generated.
func (s *Session) AttachSuggestions(messageID string, suggestions []string) {
	for i := range s.Transcript {
		if s.Transcript[i].ID == messageID {
			s.Transcript[i].Suggestions = suggestions
			return
		}
	}
}

func (s *Session) clearArtifacts() {
	s.Transcript = nil
	s.Exercises = nil
	s.Quiz = nil
	s.Exam = nil
	s.epoch++
}
