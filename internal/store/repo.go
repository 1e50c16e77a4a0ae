package store

import (
	"context"
	"time"
)

// LLMRequestEventData captures a single generative API call.
type LLMRequestEventData struct {
	Model        string
	Purpose      string
	SchemaName   string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// SessionEventData captures a navigation milestone.
type SessionEventData struct {
	SessionID   string
	Action      string // "start", "end" or "enter-mode"
	Role        string
	SpecialtyID string
	SubjectID   string
	LessonID    string
	Mode        string
}

// QuizResultEventData captures a submitted quiz.
type QuizResultEventData struct {
	SessionID    string
	SubjectID    string
	LessonID     string
	Correct      int
	Total        int
	DurationSecs int
}

// UsageSummary aggregates LLM request events for one purpose.
type UsageSummary struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records a generative API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendSessionEvent records a navigation milestone.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendQuizResult records a submitted quiz.
	AppendQuizResult(ctx context.Context, data QuizResultEventData) error

	// UsageByPurpose aggregates LLM request events per purpose label.
	UsageByPurpose(ctx context.Context) ([]UsageSummary, error)

	// QuizHistory returns submitted quizzes for a lesson, newest first.
	QuizHistory(ctx context.Context, lessonID string, limit int) ([]QuizResult, error)
}

// QuizResult is a stored quiz attempt.
type QuizResult struct {
	SessionID    string
	SubjectID    string
	LessonID     string
	Correct      int
	Total        int
	DurationSecs int
	Timestamp    time.Time
}

// Profile is a persisted identity. The specialty, subject and program text
// are the last-used context, reloaded on the next sign-in.
type Profile struct {
	ID          int
	Name        string
	Role        string // "student" or "teacher"
	SpecialtyID string
	SubjectID   string // teachers only
	ProgramText string // teachers only
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProfileRepo manages persisted identities.
type ProfileRepo interface {
	// Save creates the profile or updates it by name.
	Save(ctx context.Context, p *Profile) error

	// ByName returns the named profile, or nil when absent.
	ByName(ctx context.Context, name string) (*Profile, error)

	// List returns all profiles ordered by name.
	List(ctx context.Context) ([]*Profile, error)
}

// Gradebook entry kinds: a formal exam mark or a continuous-assessment mark
// with the teacher's remarks.
const (
	KindExam       = "exam"
	KindAssessment = "assessment"
)

// GradebookEntry is one mark out of 20.
type GradebookEntry struct {
	ID         int
	Student    string
	SubjectID  string
	Label      string
	Kind       string // KindExam or KindAssessment
	Mark       float64
	Semester   int
	Notes      string
	RecordedAt time.Time
}

// GradebookRepo manages teacher gradebook marks.
type GradebookRepo interface {
	// Add stores a new mark.
	Add(ctx context.Context, e *GradebookEntry) error

	// ForStudent returns a student's marks, newest first.
	ForStudent(ctx context.Context, student string) ([]*GradebookEntry, error)

	// All returns every mark ordered by student then date.
	All(ctx context.Context) ([]*GradebookEntry, error)

	// Remove deletes a mark by ID.
	Remove(ctx context.Context, id int) error
}
