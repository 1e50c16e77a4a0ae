package screens

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/nav"
	"github.com/bacdz/eduai/internal/quiz"
	"github.com/bacdz/eduai/internal/screen"
	"github.com/bacdz/eduai/internal/store"
	"github.com/bacdz/eduai/internal/ui/components"
	"github.com/bacdz/eduai/internal/ui/layout"
	"github.com/bacdz/eduai/internal/ui/theme"
)

type quizMsg struct {
	epoch uint64
	quiz  *quiz.Quiz
	err   error
}

// QuizScreen runs one quiz attempt: answering, score, per-question review.
type QuizScreen struct {
	deps      *Deps
	choice    components.MultiChoice
	reviewIdx int
	errMsg    string
}

var _ screen.Screen = (*QuizScreen)(nil)

// NewQuizScreen creates the quiz screen.
func NewQuizScreen(deps *Deps) *QuizScreen {
	q := &QuizScreen{deps: deps}
	if s := deps.Session.Quiz; s != nil && s.Phase == quiz.PhaseAnswering {
		q.loadQuestion()
	}
	return q
}

// Init generates a quiz unless an attempt is already in progress.
func (q *QuizScreen) Init() tea.Cmd {
	deps := q.deps
	if deps.Session.Quiz != nil {
		return nil
	}
	return q.generate()
}

func (q *QuizScreen) generate() tea.Cmd {
	deps := q.deps
	if deps.Gen == nil {
		q.errMsg = i18n.T("error.no-credentials")
		return nil
	}
	if !deps.Session.BeginGeneration(nav.SlotQuiz) {
		return nil
	}

	epoch := deps.Session.Epoch()
	gctx := deps.genContext()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.genTimeout())
		defer cancel()
		generated, err := deps.Gen.Quiz(ctx, gctx)
		return quizMsg{epoch: epoch, quiz: generated, err: err}
	}
}

func (q *QuizScreen) loadQuestion() {
	attempt := q.deps.Session.Quiz
	question := attempt.Quiz.Questions[attempt.Current]
	q.choice = components.NewMultiChoice(question.Question, question.Options)
}

// recordResult appends the submitted attempt to the event log.
func (q *QuizScreen) recordResult() tea.Cmd {
	deps := q.deps
	s := deps.Session
	attempt := s.Quiz
	if deps.Events == nil || attempt == nil {
		return nil
	}

	data := store.QuizResultEventData{
		SessionID:    s.ID,
		Correct:      attempt.Score(),
		Total:        attempt.Total(),
		DurationSecs: int(attempt.Duration().Seconds()),
	}
	if s.Subject != nil {
		data.SubjectID = s.Subject.ID
	}
	if s.Lesson != nil {
		data.LessonID = s.Lesson.ID
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		_ = deps.Events.AppendQuizResult(ctx, data)
		return nil
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s := q.deps.Session

	switch msg := msg.(type) {
	case quizMsg:
		s.EndGeneration(nav.SlotQuiz, msg.epoch)
		if s.Stale(msg.epoch) {
			return q, nil
		}
		if msg.err != nil {
			q.errMsg = errText(msg.err)
			return q, nil
		}
		attempt, err := quiz.NewSession(msg.quiz)
		if err != nil {
			q.errMsg = i18n.T("error.generation")
			return q, nil
		}
		s.Quiz = attempt
		q.loadQuestion()
		return q, nil

	case tea.KeyMsg:
		attempt := s.Quiz

		if msg.String() == "esc" {
			s.ChangeMode()
			return q, nil
		}
		if attempt == nil {
			return q, nil
		}

		switch attempt.Phase {
		case quiz.PhaseAnswering:
			var chosen int
			q.choice, chosen = q.choice.Update(msg)
			if chosen < 0 {
				return q, nil
			}
			if err := attempt.Answer(chosen); err != nil {
				return q, nil
			}
			if attempt.Phase == quiz.PhaseResult {
				return q, q.recordResult()
			}
			q.loadQuestion()

		case quiz.PhaseResult:
			switch msg.String() {
			case "r":
				q.reviewIdx = 0
				_ = attempt.Review()
			case "n":
				// A retake is a fresh generation, never a replay.
				s.Quiz = nil
				q.errMsg = ""
				return q, q.generate()
			}

		case quiz.PhaseReview:
			switch msg.String() {
			case "left", "h":
				if q.reviewIdx > 0 {
					q.reviewIdx--
				}
			case "right", "l":
				if q.reviewIdx < attempt.Total()-1 {
					q.reviewIdx++
				}
			case "b":
				_ = attempt.BackToResult()
			}
		}
	}

	return q, nil
}

func (q *QuizScreen) View(width, height int) string {
	s := q.deps.Session

	if s.Generating(nav.SlotQuiz) {
		return layout.Centered(theme.Busy.Render(i18n.T("quiz.generating")), width, height)
	}
	if q.errMsg != "" {
		return layout.Centered(theme.Incorrect.Render(q.errMsg), width, height)
	}
	attempt := s.Quiz
	if attempt == nil {
		return ""
	}

	var b strings.Builder
	switch attempt.Phase {
	case quiz.PhaseAnswering:
		b.WriteString(theme.Subtitle.Render(i18n.Td("quiz.question", map[string]any{
			"Number": attempt.Current + 1,
			"Total":  attempt.Total(),
		})))
		b.WriteString("\n\n")
		b.WriteString(q.choice.View())

	case quiz.PhaseResult:
		b.WriteString(theme.Title.Render(attempt.Quiz.Title))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(i18n.Td("quiz.score", map[string]any{
			"Correct": attempt.Score(),
			"Total":   attempt.Total(),
		})))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("r " + i18n.T("quiz.review") + "   n " + i18n.T("quiz.retake")))

	case quiz.PhaseReview:
		question := attempt.Quiz.Questions[q.reviewIdx]
		chosen, _ := attempt.AnswerAt(q.reviewIdx)
		b.WriteString(theme.Subtitle.Render(i18n.Td("quiz.question", map[string]any{
			"Number": q.reviewIdx + 1,
			"Total":  attempt.Total(),
		})))
		b.WriteString("\n\n")
		b.WriteString(components.RenderReview(
			question.Question, question.Options,
			question.CorrectAnswerIndex, chosen, question.Explanation))
		b.WriteString("\n" + theme.Hint.Render("←→   b "+i18n.T("quiz.back")))
	}

	return layout.Centered(b.String(), width, height)
}

func (q *QuizScreen) Title() string {
	return i18n.T("mode.quiz")
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: i18n.T("common.select")},
		{Key: "Enter", Description: i18n.T("common.select")},
		{Key: "Esc", Description: i18n.T("common.back")},
		{Key: "Ctrl+C", Description: i18n.T("common.quit")},
	}
}
