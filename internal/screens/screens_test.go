package screens

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/auth"
	"github.com/bacdz/eduai/internal/curriculum"
	"github.com/bacdz/eduai/internal/generate"
	"github.com/bacdz/eduai/internal/gradebook"
	"github.com/bacdz/eduai/internal/llm"
	"github.com/bacdz/eduai/internal/nav"
	"github.com/bacdz/eduai/internal/quiz"
	"github.com/bacdz/eduai/internal/store"
)

// fakeProfiles is an in-memory ProfileRepo.
type fakeProfiles struct {
	byName map[string]*store.Profile
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{byName: make(map[string]*store.Profile)}
}

func (f *fakeProfiles) Save(_ context.Context, p *store.Profile) error {
	cp := *p
	f.byName[p.Name] = &cp
	return nil
}

func (f *fakeProfiles) ByName(_ context.Context, name string) (*store.Profile, error) {
	if p, ok := f.byName[name]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProfiles) List(context.Context) ([]*store.Profile, error) {
	return nil, nil
}

// fakeEvents records appended events and ignores queries.
type fakeEvents struct {
	sessions []store.SessionEventData
	quizzes  []store.QuizResultEventData
}

func (f *fakeEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	f.sessions = append(f.sessions, d)
	return nil
}

func (f *fakeEvents) AppendQuizResult(_ context.Context, d store.QuizResultEventData) error {
	f.quizzes = append(f.quizzes, d)
	return nil
}

func (f *fakeEvents) UsageByPurpose(context.Context) ([]store.UsageSummary, error) {
	return nil, nil
}

func (f *fakeEvents) QuizHistory(context.Context, string, int) ([]store.QuizResult, error) {
	return nil, nil
}

func testCatalog() *curriculum.Catalog {
	return &curriculum.Catalog{
		Specialties: []curriculum.Specialty{
			{ID: "science", Name: "علوم تجريبية", Icon: "🔬"},
			{ID: "custom", Name: "مسار خاص", Icon: "📄"},
		},
		Subjects: []curriculum.Subject{
			{
				ID:          "math",
				Name:        "الرياضيات",
				Icon:        "➗",
				Specialties: []string{"science"},
				Scientific:  true,
				Curriculum: []curriculum.Unit{
					{
						ID: "u1", Title: "الدوال", Semester: 1,
						Lessons: []curriculum.Lesson{{ID: "l1", Title: "النهايات"}},
					},
					{
						ID: "u2", Title: "الأعداد", Semester: 2,
						Lessons: []curriculum.Lesson{{ID: "l2", Title: "الأعداد المركبة"}},
					},
				},
			},
		},
	}
}

func testDeps(t *testing.T, responses ...llm.MockResponse) (*Deps, *fakeEvents) {
	t.Helper()
	filter, err := curriculum.LoadFilter()
	if err != nil {
		t.Fatalf("load filter: %v", err)
	}
	events := &fakeEvents{}
	deps := &Deps{
		Session:  nav.NewSession(),
		Identity: &auth.Identity{},
		Catalog:  testCatalog(),
		Filter:   filter,
		Gen:      generate.NewService(llm.NewMockProvider(responses...), generate.DefaultConfig()),
		Auth:     auth.NewService(newFakeProfiles()),
		Events:   events,
	}
	return deps, events
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// resolveStudent walks a student session to the mode step.
func resolveStudent(t *testing.T, deps *Deps) {
	t.Helper()
	s := deps.Session
	if err := s.ChooseRole(auth.RoleStudent); err != nil {
		t.Fatal(err)
	}
	if err := s.PickSpecialty(deps.Catalog.SpecialtyByID("science")); err != nil {
		t.Fatal(err)
	}
	if err := s.PickSubject(deps.Catalog.SubjectByID("math")); err != nil {
		t.Fatal(err)
	}
	_, lesson := deps.Catalog.FindLesson("math", "l1")
	if err := s.PickLesson(lesson); err != nil {
		t.Fatal(err)
	}
}

func TestRoleSelectRestoresSavedSpecialty(t *testing.T) {
	deps, _ := testDeps(t)
	profiles := newFakeProfiles()
	profiles.Save(context.Background(), &store.Profile{
		Name: "أمينة", Role: "student", SpecialtyID: "science",
	})
	deps.Auth = auth.NewService(profiles)

	r := NewRoleSelect(deps)
	for _, ch := range "أمينة" {
		r.Update(keyPress(ch))
	}
	r.Update(specialKey(tea.KeyTab)) // focus the role menu
	r.Update(specialKey(tea.KeyEnter))

	if deps.Session.Step != nav.StepSubject {
		t.Fatalf("saved specialty should skip track selection, got step %s", deps.Session.Step)
	}
	if deps.Identity.Name != "أمينة" || deps.Identity.SpecialtyID != "science" {
		t.Errorf("identity not restored: %+v", deps.Identity)
	}
}

func TestRoleSelectRejectsEmptyName(t *testing.T) {
	deps, _ := testDeps(t)
	r := NewRoleSelect(deps)
	r.Update(specialKey(tea.KeyTab))
	r.Update(specialKey(tea.KeyEnter))

	if deps.Session.Step != nav.StepRoleSelection {
		t.Fatalf("empty name must not sign in, got step %s", deps.Session.Step)
	}
}

func TestTeacherSetupBindsTrackAndSubject(t *testing.T) {
	deps, _ := testDeps(t)
	deps.Identity.Name = "كمال"
	deps.Identity.Role = auth.RoleTeacher
	if err := deps.Session.ChooseRole(auth.RoleTeacher); err != nil {
		t.Fatal(err)
	}

	setup := NewTeacherSetup(deps)
	setup.Update(specialKey(tea.KeyEnter)) // science track
	setup.Update(specialKey(tea.KeyEnter)) // math subject

	if deps.Session.Step != nav.StepTeacherDashboard {
		t.Fatalf("expected dashboard, got step %s", deps.Session.Step)
	}
	if deps.Identity.SpecialtyID != "science" || deps.Identity.SubjectID != "math" {
		t.Errorf("identity context not bound: %+v", deps.Identity)
	}
}

func TestTeacherSetupSkipsPersonalTrack(t *testing.T) {
	deps, _ := testDeps(t)
	if err := deps.Session.ChooseRole(auth.RoleTeacher); err != nil {
		t.Fatal(err)
	}

	setup := NewTeacherSetup(deps)
	view := setup.View(80, 24)
	if strings.Contains(view, "مسار خاص") {
		t.Error("the personal track must not be teachable")
	}
}

func TestDashboardBrowseLessons(t *testing.T) {
	deps, _ := testDeps(t)
	enterDashboard(t, deps)

	d := NewDashboard(deps)
	d.Update(specialKey(tea.KeyEnter)) // first enabled item: browse lessons

	if deps.Session.Step != nav.StepLesson {
		t.Fatalf("browse should open lesson selection, got step %s", deps.Session.Step)
	}
}

func TestDashboardExamBuilder(t *testing.T) {
	deps, _ := testDeps(t)
	enterDashboard(t, deps)

	d := NewDashboard(deps)
	d.Update(keyPress('j'))
	d.Update(specialKey(tea.KeyEnter))

	if deps.Session.Step != nav.StepExamFlow {
		t.Fatalf("expected exam flow, got step %s", deps.Session.Step)
	}
	if deps.Session.Mode != nav.ModeExamBuilder {
		t.Errorf("expected exam-builder mode, got %s", deps.Session.Mode)
	}
}

func enterDashboard(t *testing.T, deps *Deps) {
	t.Helper()
	s := deps.Session
	if err := s.ChooseRole(auth.RoleTeacher); err != nil {
		t.Fatal(err)
	}
	err := s.SetTeacherContext(
		deps.Catalog.SpecialtyByID("science"),
		deps.Catalog.SubjectByID("math"),
	)
	if err != nil {
		t.Fatal(err)
	}
}

func TestChatDropsStaleResult(t *testing.T) {
	deps, _ := testDeps(t)
	resolveStudent(t, deps)
	if err := deps.Session.EnterMode(nav.ModeFast); err != nil {
		t.Fatal(err)
	}

	c := NewChat(deps)
	c.Update(chatResultMsg{epoch: deps.Session.Epoch() + 1, content: "متأخر"})

	if len(deps.Session.Transcript) != 0 {
		t.Fatal("a result from a superseded context must be dropped")
	}
}

func TestChatAppendsFreshResult(t *testing.T) {
	deps, _ := testDeps(t)
	resolveStudent(t, deps)
	if err := deps.Session.EnterMode(nav.ModeFast); err != nil {
		t.Fatal(err)
	}

	c := NewChat(deps)
	c.Update(chatResultMsg{epoch: deps.Session.Epoch(), content: "شرح الدرس"})

	transcript := deps.Session.Transcript
	if len(transcript) != 1 || transcript[0].Role != "assistant" {
		t.Fatalf("expected one assistant message, got %+v", transcript)
	}
}

func TestChatReentryRestartsOpening(t *testing.T) {
	deps, _ := testDeps(t)
	resolveStudent(t, deps)
	s := deps.Session
	if err := s.EnterMode(nav.ModeFast); err != nil {
		t.Fatal(err)
	}

	first := NewChat(deps)
	first.Init()
	if !s.Generating(nav.SlotChat) {
		t.Fatal("opening generation should be outstanding")
	}
	staleEpoch := s.Epoch()

	// Leave while the opening is still in flight, then come back.
	s.ChangeMode()
	if err := s.EnterMode(nav.ModeFast); err != nil {
		t.Fatal(err)
	}

	second := NewChat(deps)
	second.Init()
	if !s.Generating(nav.SlotChat) {
		t.Fatal("re-entering must restart the opening generation")
	}

	// The superseded opening lands late: dropped, and the fresh request
	// keeps its slot.
	second.Update(chatResultMsg{epoch: staleEpoch, content: "متأخر"})
	if len(s.Transcript) != 0 {
		t.Fatal("a superseded opening must be dropped")
	}
	if !s.Generating(nav.SlotChat) {
		t.Fatal("a superseded result must not free the outstanding request")
	}

	second.Update(chatResultMsg{epoch: s.Epoch(), content: "شرح الدرس"})
	if len(s.Transcript) != 1 {
		t.Fatal("the fresh opening must land in the transcript")
	}
}

func TestChatDigitPicksSuggestion(t *testing.T) {
	deps, _ := testDeps(t)
	resolveStudent(t, deps)
	if err := deps.Session.EnterMode(nav.ModeFast); err != nil {
		t.Fatal(err)
	}
	s := deps.Session
	id := s.AppendMessage("assistant", "الشرح", s.Mode)
	s.AttachSuggestions(id, []string{"ما هي النهاية؟", "مثال آخر"})

	c := NewChat(deps)
	c.Update(keyPress('2'))

	transcript := s.Transcript
	last := transcript[len(transcript)-1]
	if last.Role != "user" || last.Content != "مثال آخر" {
		t.Fatalf("digit should send the matching suggestion, got %+v", last)
	}
}

func TestExamFlowGeneratesAndReveals(t *testing.T) {
	raw, _ := json.Marshal(map[string]string{
		"examText":     "نص الموضوع",
		"solutionText": "التصحيح النموذجي",
	})
	deps, _ := testDeps(t, llm.MockResponse{Content: raw})
	enterDashboard(t, deps)
	if err := deps.Session.EnterMode(nav.ModeExamBuilder); err != nil {
		t.Fatal(err)
	}

	e := NewExamFlow(deps)
	_, cmd := e.Update(specialKey(tea.KeyEnter)) // semester 1
	if cmd == nil {
		t.Fatal("selecting a semester should start generation")
	}
	e.Update(cmd())

	exam := deps.Session.Exam
	if exam == nil || exam.Semester != 1 || exam.ExamText == "" {
		t.Fatalf("exam not stored: %+v", exam)
	}
	if exam.SolutionRevealed {
		t.Fatal("the marking scheme starts hidden")
	}

	e.Update(keyPress('s'))
	if !deps.Session.Exam.SolutionRevealed {
		t.Fatal("s should reveal the marking scheme")
	}
}

func TestExamFlowEmptySemester(t *testing.T) {
	deps, _ := testDeps(t)
	enterDashboard(t, deps)
	if err := deps.Session.EnterMode(nav.ModeExamBuilder); err != nil {
		t.Fatal(err)
	}

	e := NewExamFlow(deps)
	e.Update(keyPress('j'))
	e.Update(keyPress('j'))
	_, cmd := e.Update(specialKey(tea.KeyEnter)) // semester 3 has no lessons
	if cmd != nil {
		t.Fatal("an empty semester must not reach the provider")
	}
	if deps.Session.Generating(nav.SlotExam) {
		t.Fatal("no generation should be outstanding")
	}
}

func TestQuizRecordsResult(t *testing.T) {
	deps, events := testDeps(t)
	resolveStudent(t, deps)
	if err := deps.Session.EnterMode(nav.ModeQuiz); err != nil {
		t.Fatal(err)
	}

	q := NewQuizScreen(deps)
	q.Update(quizMsg{epoch: deps.Session.Epoch(), quiz: tenQuestionQuiz()})

	attempt := deps.Session.Quiz
	if attempt == nil {
		t.Fatal("quiz attempt not started")
	}
	var cmd tea.Cmd
	for i := 0; i < attempt.Total(); i++ {
		_, cmd = q.Update(specialKey(tea.KeyEnter)) // answer option أ every time
	}
	if cmd == nil {
		t.Fatal("submitting the last answer should record the result")
	}
	cmd()

	if len(events.quizzes) != 1 {
		t.Fatalf("expected one recorded result, got %d", len(events.quizzes))
	}
	rec := events.quizzes[0]
	if rec.Total != 10 || rec.LessonID != "l1" {
		t.Errorf("unexpected result event: %+v", rec)
	}
}

// tenQuestionQuiz builds a valid quiz where the first option is always
// correct.
// fakeMarks is an in-memory store.GradebookRepo.
type fakeMarks struct {
	entries []*store.GradebookEntry
}

func (f *fakeMarks) Add(_ context.Context, e *store.GradebookEntry) error {
	e.ID = len(f.entries) + 1
	copied := *e
	f.entries = append(f.entries, &copied)
	return nil
}

func (f *fakeMarks) ForStudent(_ context.Context, student string) ([]*store.GradebookEntry, error) {
	var out []*store.GradebookEntry
	for _, e := range f.entries {
		if e.Student == student {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeMarks) All(_ context.Context) ([]*store.GradebookEntry, error) {
	return f.entries, nil
}

func (f *fakeMarks) Remove(_ context.Context, id int) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestGradebookAssessmentFormKeepsNotes(t *testing.T) {
	deps, _ := testDeps(t)
	repo := &fakeMarks{}
	deps.Gradebook = gradebook.NewService(repo)
	enterDashboard(t, deps)
	if err := deps.Session.OpenGradebook(); err != nil {
		t.Fatal(err)
	}

	g := NewGradebookScreen(deps)
	g.Update(keyPress('c'))
	if !g.adding || g.kind != store.KindAssessment {
		t.Fatalf("adding = %v kind = %q, want an open assessment form", g.adding, g.kind)
	}

	fields := []string{"أمينة", "مشاركة", "16", "1", "تتابع بجدية"}
	var cmd tea.Cmd
	for _, field := range fields {
		for _, r := range field {
			g.Update(keyPress(r))
		}
		_, cmd = g.Update(specialKey(tea.KeyEnter))
	}
	if cmd == nil {
		t.Fatal("submitting the last field must save the entry")
	}
	cmd()

	if len(repo.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(repo.entries))
	}
	e := repo.entries[0]
	if e.Kind != store.KindAssessment {
		t.Errorf("kind = %q, want assessment", e.Kind)
	}
	if e.Notes != "تتابع بجدية" {
		t.Errorf("notes = %q, remarks must survive the form", e.Notes)
	}
	if e.Student != "أمينة" || e.Mark != 16 || e.SubjectID != "math" {
		t.Errorf("entry = %+v", e)
	}
}

func tenQuestionQuiz() *quiz.Quiz {
	q := &quiz.Quiz{Title: "اختبار النهايات"}
	for i := 0; i < 10; i++ {
		q.Questions = append(q.Questions, quiz.Question{
			Question:           "سؤال",
			Options:            []string{"أ", "ب", "ج", "د"},
			CorrectAnswerIndex: 0,
			Explanation:        "شرح",
		})
	}
	return q
}
