package gradebook

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bacdz/eduai/internal/store"
)

// fakeRepo is an in-memory GradebookRepo.
type fakeRepo struct {
	entries []*store.GradebookEntry
	nextID  int
}

func (r *fakeRepo) Add(_ context.Context, e *store.GradebookEntry) error {
	r.nextID++
	e.ID = r.nextID
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}
	copied := *e
	r.entries = append(r.entries, &copied)
	return nil
}

func (r *fakeRepo) ForStudent(_ context.Context, student string) ([]*store.GradebookEntry, error) {
	var out []*store.GradebookEntry
	for _, e := range r.entries {
		if e.Student == student {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeRepo) All(_ context.Context) ([]*store.GradebookEntry, error) {
	return r.entries, nil
}

func (r *fakeRepo) Remove(_ context.Context, id int) error {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func entry(student, subject string, mark float64) *store.GradebookEntry {
	return &store.GradebookEntry{
		Student:   student,
		SubjectID: subject,
		Label:     "فرض محروس",
		Mark:      mark,
		Semester:  1,
	}
}

func TestRecordValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	cases := []struct {
		name  string
		entry *store.GradebookEntry
	}{
		{"MissingStudent", &store.GradebookEntry{Label: "فرض", Mark: 10, Semester: 1}},
		{"MissingLabel", &store.GradebookEntry{Student: "أمينة", Mark: 10, Semester: 1}},
		{"SemesterZero", &store.GradebookEntry{Student: "أمينة", Label: "فرض", Mark: 10, Semester: 0}},
		{"SemesterFour", &store.GradebookEntry{Student: "أمينة", Label: "فرض", Mark: 10, Semester: 4}},
		{"MarkNegative", entry("أمينة", "math", -0.25)},
		{"MarkAbove20", entry("أمينة", "math", 20.25)},
		{"MarkNotQuarterStep", entry("أمينة", "math", 14.1)},
		{"UnknownKind", &store.GradebookEntry{Student: "أمينة", Label: "فرض", Kind: "homework", Mark: 10, Semester: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.Record(ctx, tc.entry); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	valid := entry("أمينة", "math", 14.75)
	if err := svc.Record(ctx, valid); err != nil {
		t.Fatalf("valid mark rejected: %v", err)
	}
	if valid.Kind != store.KindExam {
		t.Errorf("kind = %q, want the exam default", valid.Kind)
	}
}

func TestRecordContinuousAssessment(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	e := entry("أمينة", "math", 16)
	e.Kind = store.KindAssessment
	e.Notes = "مشاركة ممتازة في القسم"
	if err := svc.Record(context.Background(), e); err != nil {
		t.Fatalf("record: %v", err)
	}

	stored := repo.entries[0]
	if stored.Kind != store.KindAssessment {
		t.Errorf("kind = %q, want assessment", stored.Kind)
	}
	if stored.Notes != "مشاركة ممتازة في القسم" {
		t.Errorf("notes = %q, remarks must persist", stored.Notes)
	}
}

func TestStudentReport(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	assessment := entry("أمينة", "math", 19)
	assessment.Kind = store.KindAssessment
	assessment.Notes = "واظبت على الواجبات"

	marks := []*store.GradebookEntry{
		entry("أمينة", "math", 15),
		entry("أمينة", "math", 12),
		entry("أمينة", "physics", 17.5),
		entry("كريم", "math", 8),
		assessment,
	}
	for _, m := range marks {
		if err := svc.Record(ctx, m); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	report, err := svc.StudentReport(ctx, "أمينة")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(report.Entries))
	}
	if len(report.Assessments) != 1 || report.Assessments[0].Notes == "" {
		t.Fatalf("assessments = %+v, want the continuous-assessment entry with its notes", report.Assessments)
	}
	if len(report.Subjects) != 2 {
		t.Fatalf("subjects = %d, want 2", len(report.Subjects))
	}
	// Continuous assessment stays out of the exam averages.
	if report.Subjects[0].SubjectID != "math" || math.Abs(report.Subjects[0].Average-13.5) > 1e-9 {
		t.Errorf("math average = %+v, want 13.5", report.Subjects[0])
	}
	if math.Abs(report.Overall-(15+12+17.5)/3) > 1e-9 {
		t.Errorf("overall = %.3f", report.Overall)
	}
}

func TestStudentReport_Empty(t *testing.T) {
	svc := NewService(&fakeRepo{})

	report, err := svc.StudentReport(context.Background(), "غائب")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Entries) != 0 || report.Overall != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestExportXLSX(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Record(ctx, entry("أمينة", "math", 15.5)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := svc.Record(ctx, entry("كريم", "physics", 11.25)); err != nil {
		t.Fatalf("record: %v", err)
	}

	path := filepath.Join(t.TempDir(), "gradebook.xlsx")
	if err := svc.ExportXLSX(ctx, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus 2 marks", len(rows))
	}
	if rows[0][0] != "Student" || rows[0][3] != "Kind" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "أمينة" || rows[1][3] != "exam" || rows[1][4] != "15.5" {
		t.Errorf("first row = %v", rows[1])
	}
}
