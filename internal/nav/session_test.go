package nav

import (
	"testing"

	"github.com/bacdz/eduai/internal/auth"
	"github.com/bacdz/eduai/internal/curriculum"
	"github.com/bacdz/eduai/internal/quiz"
)

func studentAtMode(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	mustOK(t, s.ChooseRole(auth.RoleStudent))
	mustOK(t, s.PickSpecialty(&curriculum.Specialty{ID: "sciences-exp"}))
	mustOK(t, s.PickSubject(&curriculum.Subject{ID: "math"}))
	mustOK(t, s.PickLesson(&curriculum.Lesson{ID: "ml1"}))
	return s
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected transition error: %v", err)
	}
}

func TestStudentWalkToChat(t *testing.T) {
	s := studentAtMode(t)
	if s.Step != StepMode {
		t.Fatalf("step = %s, want mode", s.Step)
	}
	if !s.ContextResolved() {
		t.Fatal("context must be resolved after lesson pick")
	}

	mustOK(t, s.EnterMode(ModeFast))
	if s.Step != StepChat {
		t.Errorf("step = %s, want chat", s.Step)
	}
}

func TestModeRouting(t *testing.T) {
	tests := []struct {
		mode Mode
		want Step
	}{
		{ModeQuiz, StepQuiz},
		{ModeExercises, StepExercises},
		{ModeThink, StepChat},
		{ModeSearch, StepChat},
		{ModeAnalyze, StepChat},
	}
	for _, tt := range tests {
		s := studentAtMode(t)
		mustOK(t, s.EnterMode(tt.mode))
		if s.Step != tt.want {
			t.Errorf("mode %s: step = %s, want %s", tt.mode, s.Step, tt.want)
		}
	}
}

func TestGenerationUnreachableWithoutContext(t *testing.T) {
	s := NewSession()
	mustOK(t, s.ChooseRole(auth.RoleStudent))
	mustOK(t, s.PickSpecialty(&curriculum.Specialty{ID: "sciences-exp"}))

	// Force the step without resolving subject and lesson.
	s.Step = StepMode
	if err := s.EnterMode(ModeQuiz); err == nil {
		t.Fatal("quiz must be unreachable with an unresolved context")
	}
	if s.Step != StepMode {
		t.Errorf("failed transition moved the step to %s", s.Step)
	}
}

func TestTeacherOnlyModes(t *testing.T) {
	s := studentAtMode(t)
	if err := s.EnterMode(ModeLessonPlan); err == nil {
		t.Error("lesson-plan must require the teacher role")
	}
	if err := s.EnterMode(ModeExamBuilder); err == nil {
		t.Error("exam-builder must require the teacher role")
	}
}

func TestChangeSubjectClearsBelow(t *testing.T) {
	s := studentAtMode(t)
	mustOK(t, s.EnterMode(ModeFast))
	s.AppendMessage("assistant", "مرحبا", ModeFast)
	s.Exercises = &ExerciseSheet{Text: "تمارين"}

	s.ChangeSubject()

	if s.Step != StepSubject {
		t.Errorf("step = %s, want subject", s.Step)
	}
	if s.Subject != nil || s.Lesson != nil {
		t.Error("subject and lesson must be cleared")
	}
	if s.Specialty == nil {
		t.Error("specialty must survive a subject change")
	}
	if s.Transcript != nil || s.Exercises != nil || s.Quiz != nil || s.Exam != nil {
		t.Error("artifacts must be cleared")
	}
}

func TestChangeSpecialtyClearsEverything(t *testing.T) {
	s := studentAtMode(t)
	s.AppendMessage("assistant", "مرحبا", ModeFast)

	s.ChangeSpecialty()

	if s.Step != StepSpecialty {
		t.Errorf("step = %s, want specialty", s.Step)
	}
	if s.Specialty != nil || s.Subject != nil || s.Lesson != nil {
		t.Error("whole context must be cleared")
	}
	if s.Transcript != nil {
		t.Error("transcript must be cleared")
	}
}

func TestChangeModeKeepsLesson(t *testing.T) {
	s := studentAtMode(t)
	mustOK(t, s.EnterMode(ModeQuiz))
	s.Quiz = &quiz.Session{}

	s.ChangeMode()

	if s.Step != StepMode {
		t.Errorf("step = %s, want mode", s.Step)
	}
	if s.Lesson == nil {
		t.Error("lesson must survive a mode change")
	}
	if s.Quiz != nil {
		t.Error("quiz artifact must be cleared")
	}
}

func TestLogout(t *testing.T) {
	s := studentAtMode(t)
	mustOK(t, s.EnterMode(ModeThink))
	s.ProgramText = "برنامج"
	previousID := s.ID

	s.Logout()

	if s.Step != StepRoleSelection {
		t.Errorf("step = %s, want role-selection", s.Step)
	}
	if s.Role != "" || s.Specialty != nil || s.Subject != nil || s.Lesson != nil || s.ProgramText != "" {
		t.Error("logout must clear everything")
	}
	if s.Mode != ModeFast {
		t.Errorf("mode = %s, want the default after logout", s.Mode)
	}
	if s.ID == previousID {
		t.Error("the next sign-in must not inherit the previous session id")
	}
}

func TestEpochInvalidatesStaleResults(t *testing.T) {
	s := studentAtMode(t)
	mustOK(t, s.EnterMode(ModeFast))

	epoch := s.Epoch()
	if s.Stale(epoch) {
		t.Fatal("fresh epoch must not be stale")
	}

	s.ChangeSubject() // in-flight result now belongs to a dead context
	if !s.Stale(epoch) {
		t.Error("epoch must advance when artifacts are cleared")
	}
}

func TestGenerationGuard(t *testing.T) {
	s := studentAtMode(t)

	if !s.BeginGeneration(SlotQuiz) {
		t.Fatal("first begin must succeed")
	}
	if s.BeginGeneration(SlotQuiz) {
		t.Fatal("second begin for the same slot must be refused")
	}
	if !s.BeginGeneration(SlotChat) {
		t.Fatal("other slots are independent")
	}

	s.EndGeneration(SlotQuiz, s.Epoch())
	if !s.BeginGeneration(SlotQuiz) {
		t.Fatal("slot must be reusable after end")
	}
}

func TestGenerationSlotReclaimedAfterContextChange(t *testing.T) {
	s := studentAtMode(t)
	mustOK(t, s.EnterMode(ModeFast))

	launch := s.Epoch()
	if !s.BeginGeneration(SlotChat) {
		t.Fatal("first begin must succeed")
	}

	// Leave and re-enter while the request is still in flight.
	s.ChangeMode()
	mustOK(t, s.EnterMode(ModeFast))

	if !s.BeginGeneration(SlotChat) {
		t.Fatal("slot must be free again once the context moved on")
	}
	if !s.Generating(SlotChat) {
		t.Fatal("new request must show as outstanding")
	}

	// The superseded result arrives late; it must not free the new request.
	s.EndGeneration(SlotChat, launch)
	if !s.Generating(SlotChat) {
		t.Error("stale end must not clear the outstanding request")
	}

	s.EndGeneration(SlotChat, s.Epoch())
	if s.Generating(SlotChat) {
		t.Error("slot must be idle after the current request ends")
	}
}

func TestTeacherFlow(t *testing.T) {
	s := NewSession()
	mustOK(t, s.ChooseRole(auth.RoleTeacher))
	if s.Step != StepTeacherSetup {
		t.Fatalf("step = %s, want teacher-setup", s.Step)
	}

	spec := &curriculum.Specialty{ID: "sciences-exp"}
	sub := &curriculum.Subject{ID: "math"}
	mustOK(t, s.SetTeacherContext(spec, sub))
	if s.Step != StepTeacherDashboard {
		t.Fatalf("step = %s, want teacher-dashboard", s.Step)
	}

	// Exam builder works without a lesson: it spans a whole semester.
	mustOK(t, s.EnterMode(ModeExamBuilder))
	if s.Step != StepExamFlow {
		t.Fatalf("step = %s, want exam-flow", s.Step)
	}
	mustOK(t, s.BackToDashboard())

	mustOK(t, s.OpenProgramUpload())
	mustOK(t, s.BackToDashboard())
	mustOK(t, s.OpenGradebook())
	mustOK(t, s.BackToDashboard())

	mustOK(t, s.BrowseLessons())
	mustOK(t, s.PickLesson(&curriculum.Lesson{ID: "ml1"}))
	mustOK(t, s.EnterMode(ModeLessonPlan))
	if s.Step != StepChat {
		t.Errorf("step = %s, want chat for lesson-plan", s.Step)
	}
}

func TestCustomLessonUpload(t *testing.T) {
	s := NewSession()
	mustOK(t, s.ChooseRole(auth.RoleStudent))
	mustOK(t, s.PickSpecialty(&curriculum.Specialty{ID: "custom"}))
	mustOK(t, s.OpenPDFUpload())

	if err := s.SetCustomLesson("درس خاص", ""); err == nil {
		t.Error("empty document text must be rejected")
	}

	mustOK(t, s.SetCustomLesson("درس خاص", "محتوى الدرس"))
	if s.Step != StepMode {
		t.Fatalf("step = %s, want mode", s.Step)
	}
	if !s.ContextResolved() {
		t.Error("custom lesson must resolve the context")
	}
	if s.Lesson.Content != "محتوى الدرس" {
		t.Error("document text must become the lesson content")
	}
	if s.ProgramText != "" {
		t.Error("an upload must not masquerade as the yearly program")
	}
}

func TestAttachSuggestions(t *testing.T) {
	s := studentAtMode(t)
	mustOK(t, s.EnterMode(ModeFast))
	id := s.AppendMessage("assistant", "الإجابة", ModeFast)

	s.AttachSuggestions(id, []string{"أ", "ب", "ج"})
	if len(s.Transcript[0].Suggestions) != 3 {
		t.Error("suggestions not attached")
	}

	// A cleared transcript ignores late suggestions.
	s.ChangeMode()
	s.AttachSuggestions(id, []string{"أ"})
	if s.Transcript != nil {
		t.Error("late suggestions must not resurrect the transcript")
	}
}

func TestInvalidTransitionsAreNoOps(t *testing.T) {
	s := NewSession()

	if err := s.PickSpecialty(&curriculum.Specialty{ID: "x"}); err == nil {
		t.Error("specialty pick before role must fail")
	}
	if err := s.PickSubject(&curriculum.Subject{ID: "x"}); err == nil {
		t.Error("subject pick at role selection must fail")
	}
	if err := s.EnterMode(ModeFast); err == nil {
		t.Error("mode entry at role selection must fail")
	}
	if s.Step != StepRoleSelection {
		t.Errorf("failed transitions moved the step to %s", s.Step)
	}
}
