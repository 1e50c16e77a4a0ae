package quiz

import (
	"fmt"
	"time"
)

// Question is one multiple-choice question.
type Question struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

// Quiz is a generated set of questions.
type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Phase is the presentation state of an attempt.
type Phase int

const (
	PhaseAnswering Phase = iota // Working through questions
	PhaseResult                 // Score screen after the last answer
	PhaseReview                 // Per-question breakdown
)

// unanswered marks a question not yet reached.
const unanswered = -1

// Session is a single attempt at a quiz. Navigation is forward-only: an
// answer is recorded once and never overwritten. The score is derived from
// the answers on demand, so it cannot drift out of sync.
type Session struct {
	Quiz    *Quiz
	Current int
	Phase   Phase
	Started time.Time

	answers []int
}

// NewSession starts an attempt at the given quiz.
func NewSession(q *Quiz) (*Session, error) {
	if q == nil || len(q.Questions) == 0 {
		return nil, fmt.Errorf("quiz has no questions")
	}
	for i, question := range q.Questions {
		if len(question.Options) == 0 {
			return nil, fmt.Errorf("question %d has no options", i)
		}
		if question.CorrectAnswerIndex < 0 || question.CorrectAnswerIndex >= len(question.Options) {
			return nil, fmt.Errorf("question %d: correct answer index %d out of range", i, question.CorrectAnswerIndex)
		}
	}

	answers := make([]int, len(q.Questions))
	for i := range answers {
		answers[i] = unanswered
	}

	return &Session{
		Quiz:    q,
		Started: time.Now(),
		answers: answers,
	}, nil
}

// Answer records the choice for the current question and advances. After the
// last question the session moves to the result phase.
func (s *Session) Answer(choice int) error {
	if s.Phase != PhaseAnswering {
		return fmt.Errorf("quiz already submitted")
	}
	q := s.Quiz.Questions[s.Current]
	if choice < 0 || choice >= len(q.Options) {
		return fmt.Errorf("choice %d out of range", choice)
	}

	s.answers[s.Current] = choice

	if s.Current == len(s.Quiz.Questions)-1 {
		s.Phase = PhaseResult
		return nil
	}
	s.Current++
	return nil
}

// AnswerAt returns the recorded choice for question i, or false when the
// question has not been answered yet.
func (s *Session) AnswerAt(i int) (int, bool) {
	if i < 0 || i >= len(s.answers) || s.answers[i] == unanswered {
		return 0, false
	}
	return s.answers[i], true
}

// Score counts correct answers. Computed on demand, never cached.
func (s *Session) Score() int {
	score := 0
	for i, q := range s.Quiz.Questions {
		if s.answers[i] == q.CorrectAnswerIndex {
			score++
		}
	}
	return score
}

// Total returns the number of questions.
func (s *Session) Total() int {
	return len(s.Quiz.Questions)
}

// Review switches from the result screen to the per-question breakdown.
func (s *Session) Review() error {
	if s.Phase != PhaseResult {
		return fmt.Errorf("review is only reachable from the result screen")
	}
	s.Phase = PhaseReview
	return nil
}

// BackToResult returns from the breakdown to the score screen.
func (s *Session) BackToResult() error {
	if s.Phase != PhaseReview {
		return fmt.Errorf("not reviewing")
	}
	s.Phase = PhaseResult
	return nil
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.Phase != PhaseAnswering
}

// Duration is the time spent since the attempt started.
func (s *Session) Duration() time.Duration {
	return time.Since(s.Started)
}
