package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bacdz/eduai/internal/llm"
)

func mathContext() Context {
	return Context{
		SpecialtyName: "علوم تجريبية",
		SubjectID:     "math",
		SubjectName:   "الرياضيات",
		Scientific:    true,
		LessonTitle:   "النهايات والاستمرارية",
	}
}

func validQuizJSON() json.RawMessage {
	type question struct {
		Question           string   `json:"question"`
		Options            []string `json:"options"`
		CorrectAnswerIndex int      `json:"correctAnswerIndex"`
		Explanation        string   `json:"explanation"`
	}
	var questions []question
	for i := 0; i < 10; i++ {
		questions = append(questions, question{
			Question:           fmt.Sprintf("سؤال %d", i+1),
			Options:            []string{"أ", "ب", "ج", "د"},
			CorrectAnswerIndex: i % 4,
			Explanation:        "شرح",
		})
	}
	raw, _ := json.Marshal(map[string]any{"title": "اختبار", "questions": questions})
	return raw
}

func TestQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	svc := NewService(mock, DefaultConfig())

	q, err := svc.Quiz(context.Background(), mathContext())
	if err != nil {
		t.Fatalf("quiz: %v", err)
	}
	if len(q.Questions) != 10 {
		t.Fatalf("questions = %d, want 10", len(q.Questions))
	}
	for i, question := range q.Questions {
		if len(question.Options) != 4 {
			t.Errorf("question %d: options = %d, want 4", i, len(question.Options))
		}
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "quiz" {
		t.Error("quiz request must carry the quiz schema")
	}
	if !strings.Contains(req.Messages[0].Content, "النهايات والاستمرارية") {
		t.Error("prompt must name the lesson")
	}
	if !strings.Contains(req.Messages[0].Content, "LaTeX") {
		t.Error("scientific subject must request LaTeX notation")
	}
}

func TestQuiz_SchemaViolationSurfaces(t *testing.T) {
	// Nine questions instead of ten: the contract rejects it.
	short := validQuizJSON()
	var doc map[string]any
	json.Unmarshal(short, &doc)
	doc["questions"] = doc["questions"].([]any)[:9]
	raw, _ := json.Marshal(doc)

	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Quiz(context.Background(), mathContext())
	var invErr *llm.ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestExam(t *testing.T) {
	raw, _ := json.Marshal(map[string]string{
		"examText":     "نص الموضوع",
		"solutionText": "التصحيح النموذجي",
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	svc := NewService(mock, DefaultConfig())

	exam, err := svc.Exam(context.Background(), mathContext(), 1, []string{"النهايات", "الاشتقاقية"})
	if err != nil {
		t.Fatalf("exam: %v", err)
	}
	if exam.ExamText == "" || exam.SolutionText == "" {
		t.Fatalf("incomplete exam: %+v", exam)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "النهايات") || !strings.Contains(prompt, "الاشتقاقية") {
		t.Error("exam prompt must list the semester's lessons")
	}
}

func TestExam_NoLessons(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Exam(context.Background(), mathContext(), 3, nil); err == nil {
		t.Fatal("empty semester must be rejected before any provider call")
	}
	if mock.CallCount() != 0 {
		t.Error("no provider call expected for an empty semester")
	}
}

func TestSuggestions(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"suggestions": []string{"كيف يطرح هذا في البكالوريا؟", "أعطني مثالاً آخر", "ما أبرز النقاط؟"},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Suggestions(context.Background(), mathContext(), "الشرح السابق")
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("suggestions = %d, want 3", len(got))
	}
}

func TestSuggestions_FailurePropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Suggestions(context.Background(), mathContext(), "الشرح"); err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestExercisesAndSolution(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("موضوع التمارين")},
		llm.MockResponse{Content: json.RawMessage("الحل النموذجي")},
	)
	svc := NewService(mock, DefaultConfig())
	ctx := context.Background()

	text, err := svc.Exercises(ctx, mathContext())
	if err != nil {
		t.Fatalf("exercises: %v", err)
	}
	if text != "موضوع التمارين" {
		t.Fatalf("unexpected exercises text: %q", text)
	}

	solution, err := svc.Solution(ctx, mathContext(), text)
	if err != nil {
		t.Fatalf("solution: %v", err)
	}
	if solution != "الحل النموذجي" {
		t.Fatalf("unexpected solution text: %q", solution)
	}

	// The solution request grounds on the generated paper.
	if !strings.Contains(mock.Calls[1].Messages[0].Content, "موضوع التمارين") {
		t.Error("solution prompt must quote the exercise paper")
	}
}

func TestNotationRuleForLiterarySubject(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("شرح")})
	svc := NewService(mock, DefaultConfig())

	c := Context{
		SpecialtyName: "آداب وفلسفة",
		SubjectID:     "philosophy",
		SubjectName:   "الفلسفة",
		Scientific:    false,
		LessonTitle:   "المشكلة والإشكالية",
	}
	if _, err := svc.ExplainLesson(context.Background(), c); err != nil {
		t.Fatalf("explain: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if strings.Contains(prompt, "LaTeX للرموز") {
		t.Error("literary subject must not request LaTeX")
	}
	if !strings.Contains(prompt, "مادة أدبية") {
		t.Error("literary subject must request plain prose")
	}
}

func TestCustomDocumentExplain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("شرح الملف")})
	svc := NewService(mock, DefaultConfig())

	c := Context{
		SubjectID:     "custom-pdf",
		SubjectName:   "ملف خاص",
		LessonTitle:   "درس خاص",
		LessonContent: "محتوى الملف المرفوع",
	}
	if _, err := svc.ExplainLesson(context.Background(), c); err != nil {
		t.Fatalf("explain: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "محتوى الملف المرفوع") {
		t.Error("document prompt must embed the uploaded text")
	}
	if strings.Contains(prompt, "البرنامج السنوي") {
		t.Error("an uploaded document must not be framed as the yearly program")
	}
}

func TestLessonContentOutranksProgramText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("شرح")})
	svc := NewService(mock, DefaultConfig())

	c := mathContext()
	c.LessonContent = "نص الدرس الكامل"
	c.ProgramText = "البرنامج السنوي للمادة"
	if _, err := svc.ExplainLesson(context.Background(), c); err != nil {
		t.Fatalf("explain: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "نص الدرس الكامل") {
		t.Error("lesson content must ground the explanation")
	}
	if strings.Contains(prompt, "البرنامج السنوي للمادة") {
		t.Error("program text must step aside when lesson content exists")
	}
}

func TestConversationalModeTable(t *testing.T) {
	modes := []string{"fast", "think", "search", "analyze"}

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("شرح")},
		llm.MockResponse{Content: json.RawMessage("شرح")},
		llm.MockResponse{Content: json.RawMessage("شرح")},
		llm.MockResponse{Content: json.RawMessage("شرح")},
	)
	svc := NewService(mock, DefaultConfig())

	for _, mode := range modes {
		c := mathContext()
		c.Mode = mode
		if _, err := svc.ExplainLesson(context.Background(), c); err != nil {
			t.Fatalf("explain (%s): %v", mode, err)
		}
	}

	fast, think, search, analyze := mock.Calls[0], mock.Calls[1], mock.Calls[2], mock.Calls[3]
	if fast.Profile != llm.ProfileFast {
		t.Errorf("fast profile = %q", fast.Profile)
	}
	if think.Profile != llm.ProfileThink {
		t.Errorf("think profile = %q, want the reasoning tier", think.Profile)
	}
	if analyze.Profile != llm.ProfileThink {
		t.Errorf("analyze profile = %q, want the reasoning tier", analyze.Profile)
	}
	if !search.WebSearch {
		t.Error("search mode must ask for search grounding")
	}
	if fast.WebSearch || think.WebSearch || analyze.WebSearch {
		t.Error("only search mode may ask for search grounding")
	}

	// Every mode must shape its own request; identical prompts would make
	// the menu entries cosmetic.
	prompts := make(map[string]bool)
	for _, call := range mock.Calls {
		prompts[call.Messages[0].Content] = true
	}
	if len(prompts) != len(modes) {
		t.Errorf("distinct prompts = %d, want %d", len(prompts), len(modes))
	}
}

func TestChatCarriesHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("جواب")})
	svc := NewService(mock, DefaultConfig())

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "سؤال سابق"},
		{Role: llm.RoleAssistant, Content: "جواب سابق"},
	}
	if _, err := svc.Chat(context.Background(), mathContext(), history, "سؤال جديد"); err != nil {
		t.Fatalf("chat: %v", err)
	}

	req := mock.Calls[0]
	if len(req.Messages) != 3 {
		t.Fatalf("messages = %d, want history plus prompt", len(req.Messages))
	}
	if req.Messages[2].Role != llm.RoleUser {
		t.Error("final message must be the user prompt")
	}
}
