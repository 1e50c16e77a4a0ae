package generate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bacdz/eduai/internal/llm"
	"github.com/bacdz/eduai/internal/quiz"
)

// Config tunes generation limits.
type Config struct {
	MaxTokens     int     // free-form text responses
	QuizMaxTokens int     // structured quiz responses
	ExamMaxTokens int     // exam paper plus marking scheme
	Temperature   float64 // free-form only; structured output stays at 0
}

// DefaultConfig returns the limits used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     4096,
		QuizMaxTokens: 8192,
		ExamMaxTokens: 8192,
		Temperature:   0.7,
	}
}

// Service turns a resolved curriculum position into artifacts: explanations,
// exercises, quizzes, lesson plans and exams. It holds no session state;
// committing artifacts is the caller's job.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a generation service on top of the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// ExplainLesson produces the opening explanation shown when a chat mode is
// entered, or a document walkthrough for an uploaded custom lesson.
func (s *Service) ExplainLesson(ctx context.Context, c Context) (string, error) {
	prompt := buildExplainPrompt(c)
	if c.SubjectID == "custom-pdf" {
		prompt = buildDocumentPrompt(c)
	}
	return s.text(ctx, "chat", prompt, nil, profileFor(c.Mode))
}

// Chat answers a follow-up message in the lesson's context. History is the
// prior transcript, oldest first.
func (s *Service) Chat(ctx context.Context, c Context, history []llm.Message, userMessage string) (string, error) {
	return s.text(ctx, "chat", buildChatPrompt(c, userMessage), history, profileFor(c.Mode))
}

// Suggestions produces three short follow-up questions for the last
// assistant message. Best-effort: callers drop the result on failure.
func (s *Service) Suggestions(ctx context.Context, c Context, lastMessage string) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "suggestions")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildSuggestionsPrompt(c, lastMessage)}},
		Schema:    SuggestionsSchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("suggestions generation: %w", err)
	}

	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}
	return out.Suggestions, nil
}

// Exercises produces a three-exercise practice paper for the lesson.
func (s *Service) Exercises(ctx context.Context, c Context) (string, error) {
	return s.text(ctx, "exercises", buildExercisesPrompt(c), nil, modeProfile{})
}

// Solution produces the model answer for a previously generated exercise
// paper, using the paper itself as grounding.
func (s *Service) Solution(ctx context.Context, c Context, exercises string) (string, error) {
	return s.text(ctx, "solution", buildSolutionPrompt(c, exercises), nil, modeProfile{})
}

// Quiz produces a validated ten-question quiz for the lesson.
func (s *Service) Quiz(ctx context.Context, c Context) (*quiz.Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildQuizPrompt(c)}},
		Schema:    QuizSchema,
		MaxTokens: s.cfg.QuizMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var q quiz.Quiz
	if err := json.Unmarshal(resp.Content, &q); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}
	return &q, nil
}

// LessonPlan produces a pedagogical lesson plan with fixed section headings.
func (s *Service) LessonPlan(ctx context.Context, c Context) (string, error) {
	return s.text(ctx, "lesson-plan", buildLessonPlanPrompt(c), nil, profileFor("lesson-plan"))
}

// Exam produces a full semester exam with its marking scheme, grounded on
// the titles of every lesson in the semester.
func (s *Service) Exam(ctx context.Context, c Context, semester int, lessonTitles []string) (*Exam, error) {
	if len(lessonTitles) == 0 {
		return nil, fmt.Errorf("semester %d has no lessons", semester)
	}
	ctx = llm.WithPurpose(ctx, "exam")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildExamPrompt(c, semester, lessonTitles)}},
		Schema:    ExamSchema,
		MaxTokens: s.cfg.ExamMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("exam generation: %w", err)
	}

	var exam Exam
	if err := json.Unmarshal(resp.Content, &exam); err != nil {
		return nil, fmt.Errorf("parse exam response: %w", err)
	}
	return &exam, nil
}

func (s *Service) text(ctx context.Context, purpose, prompt string, history []llm.Message, mp modeProfile) (string, error) {
	ctx = llm.WithPurpose(ctx, purpose)

	if mp.directive != "" {
		prompt = mp.directive + "\n\n" + prompt
	}
	messages := append([]llm.Message{}, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: prompt})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    messages,
		Profile:     mp.profile,
		WebSearch:   mp.webSearch,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s generation: %w", purpose, err)
	}
	return resp.Text(), nil
}
