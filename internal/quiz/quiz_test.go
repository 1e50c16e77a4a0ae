package quiz

import "testing"

func tenQuestionQuiz() *Quiz {
	q := &Quiz{Title: "اختبار تجريبي"}
	for i := 0; i < 10; i++ {
		q.Questions = append(q.Questions, Question{
			Question:           "سؤال",
			Options:            []string{"أ", "ب", "ج", "د"},
			CorrectAnswerIndex: i % 4,
			Explanation:        "شرح",
		})
	}
	return q
}

func TestNewSession_Validation(t *testing.T) {
	if _, err := NewSession(nil); err == nil {
		t.Error("nil quiz must be rejected")
	}
	if _, err := NewSession(&Quiz{}); err == nil {
		t.Error("empty quiz must be rejected")
	}

	bad := tenQuestionQuiz()
	bad.Questions[3].CorrectAnswerIndex = 4
	if _, err := NewSession(bad); err == nil {
		t.Error("out-of-range correct index must be rejected")
	}
}

func TestAnswerFlow(t *testing.T) {
	s, err := NewSession(tenQuestionQuiz())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	// Answer correctly on even questions, wrong on odd: 5, 7, or whatever
	// the pattern yields; count alongside.
	want := 0
	for i := 0; i < 10; i++ {
		if s.Current != i {
			t.Fatalf("current = %d, want %d", s.Current, i)
		}
		choice := i % 4
		if i%3 == 0 {
			choice = (choice + 1) % 4 // deliberate mistake
		} else {
			want++
		}
		if err := s.Answer(choice); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	if s.Phase != PhaseResult {
		t.Fatalf("phase = %v, want result after last answer", s.Phase)
	}
	if got := s.Score(); got != want {
		t.Errorf("score = %d, want %d", got, want)
	}
	if s.Total() != 10 {
		t.Errorf("total = %d, want 10", s.Total())
	}
}

func TestAnswerRejectedAfterSubmission(t *testing.T) {
	s, _ := NewSession(tenQuestionQuiz())
	for i := 0; i < 10; i++ {
		if err := s.Answer(0); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	if err := s.Answer(1); err == nil {
		t.Error("answers after submission must be rejected")
	}
}

func TestAnswerOutOfRange(t *testing.T) {
	s, _ := NewSession(tenQuestionQuiz())
	if err := s.Answer(4); err == nil {
		t.Error("choice 4 of 4 options must be rejected")
	}
	if err := s.Answer(-1); err == nil {
		t.Error("negative choice must be rejected")
	}
	// A rejected answer does not advance.
	if s.Current != 0 {
		t.Errorf("current = %d after rejected answers, want 0", s.Current)
	}
}

func TestAnswerAt(t *testing.T) {
	s, _ := NewSession(tenQuestionQuiz())
	if _, ok := s.AnswerAt(0); ok {
		t.Error("unanswered question must report no answer")
	}

	s.Answer(2)
	got, ok := s.AnswerAt(0)
	if !ok || got != 2 {
		t.Errorf("AnswerAt(0) = %d,%v, want 2,true", got, ok)
	}
	if _, ok := s.AnswerAt(99); ok {
		t.Error("out-of-range index must report no answer")
	}
}

func TestReviewDoesNotAlterScore(t *testing.T) {
	s, _ := NewSession(tenQuestionQuiz())
	if err := s.Review(); err == nil {
		t.Error("review must be unreachable while answering")
	}

	for i := 0; i < 10; i++ {
		s.Answer(i % 4) // all correct
	}
	before := s.Score()

	if err := s.Review(); err != nil {
		t.Fatalf("review: %v", err)
	}
	if s.Phase != PhaseReview {
		t.Fatalf("phase = %v, want review", s.Phase)
	}
	if s.Score() != before {
		t.Error("review changed the score")
	}

	if err := s.BackToResult(); err != nil {
		t.Fatalf("back to result: %v", err)
	}
	if s.Score() != before {
		t.Error("returning to result changed the score")
	}
}
