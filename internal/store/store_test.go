package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases, so only
		// the others are checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendLLMRequestAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Model: "gemini-2.5-flash", Purpose: "quiz", SchemaName: "quiz", InputTokens: 100, OutputTokens: 400, Success: true},
		{Model: "gemini-2.5-flash", Purpose: "quiz", SchemaName: "quiz", InputTokens: 110, OutputTokens: 380, Success: true},
		{Model: "gemini-2.5-flash", Purpose: "chat", Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(usage))
	}

	// Sorted by purpose: chat before quiz.
	if usage[0].Purpose != "chat" || usage[0].Requests != 1 || usage[0].Failures != 1 {
		t.Errorf("unexpected chat summary: %+v", usage[0])
	}
	if usage[1].Purpose != "quiz" || usage[1].Requests != 2 || usage[1].Failures != 0 {
		t.Errorf("unexpected quiz summary: %+v", usage[1])
	}
	if usage[1].InputTokens != 210 || usage[1].OutputTokens != 780 {
		t.Errorf("unexpected quiz tokens: %+v", usage[1])
	}
}

func TestQuizHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendQuizResult(ctx, QuizResultEventData{
			SessionID: "sess-1",
			SubjectID: "math",
			LessonID:  "m1l1",
			Correct:   5 + i,
			Total:     10,
		})
		if err != nil {
			t.Fatalf("append quiz result %d: %v", i, err)
		}
	}

	history, err := repo.QuizHistory(ctx, "m1l1", 2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 results, got %d", len(history))
	}
	// Newest first.
	if history[0].Correct != 7 {
		t.Errorf("newest correct = %d, want 7", history[0].Correct)
	}

	other, err := repo.QuizHistory(ctx, "m1l2", 0)
	if err != nil {
		t.Fatalf("history (other lesson): %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no results for other lesson, got %d", len(other))
	}
}

func TestProfileSaveAndLookup(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.ByName(ctx, "amine")
	if err != nil {
		t.Fatalf("lookup (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile before save")
	}

	err = repo.Save(ctx, &Profile{Name: "amine", Role: "student", SpecialtyID: "science-exp"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	p, err = repo.ByName(ctx, "amine")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if p == nil || p.SpecialtyID != "science-exp" {
		t.Fatalf("unexpected profile: %+v", p)
	}

	// Saving under the same name updates in place.
	err = repo.Save(ctx, &Profile{Name: "amine", Role: "student", SpecialtyID: "math"})
	if err != nil {
		t.Fatalf("re-save: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(all))
	}
	if all[0].SpecialtyID != "math" {
		t.Errorf("specialty = %q, want updated value", all[0].SpecialtyID)
	}
}

func TestGradebookAddListRemove(t *testing.T) {
	s := openTestStore(t)
	repo := s.GradebookRepo()
	ctx := context.Background()

	entries := []*GradebookEntry{
		{Student: "yasmine", SubjectID: "math", Label: "Devoir 1", Mark: 15.5, Semester: 1},
		{Student: "yasmine", SubjectID: "physics", Label: "Participation", Kind: KindAssessment, Mark: 12.25, Semester: 1, Notes: "très active"},
		{Student: "karim", SubjectID: "math", Label: "Devoir 1", Mark: 9.75, Semester: 1},
	}
	for i, e := range entries {
		if err := repo.Add(ctx, e); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if e.ID == 0 {
			t.Fatalf("add %d: ID not set", i)
		}
	}

	forYasmine, err := repo.ForStudent(ctx, "yasmine")
	if err != nil {
		t.Fatalf("for student: %v", err)
	}
	if len(forYasmine) != 2 {
		t.Fatalf("expected 2 marks, got %d", len(forYasmine))
	}
	// Newest first: the assessment entry with its notes comes back intact,
	// and an unset kind defaults to an exam mark.
	if forYasmine[0].Kind != KindAssessment || forYasmine[0].Notes != "très active" {
		t.Errorf("assessment entry = %+v", forYasmine[0])
	}
	if forYasmine[1].Kind != KindExam {
		t.Errorf("kind = %q, want the exam default", forYasmine[1].Kind)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 marks, got %d", len(all))
	}
	// Ordered by student first.
	if all[0].Student != "karim" {
		t.Errorf("first student = %q, want karim", all[0].Student)
	}

	if err := repo.Remove(ctx, entries[2].ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	all, err = repo.All(ctx)
	if err != nil {
		t.Fatalf("all after remove: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 marks after remove, got %d", len(all))
	}
}
