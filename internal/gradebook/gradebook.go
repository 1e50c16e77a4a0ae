package gradebook

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/bacdz/eduai/internal/store"
)

// Marks are out of 20, in quarter-point steps.
const maxMark = 20.0

// Service validates and records teacher marks on top of the gradebook repo.
type Service struct {
	repo store.GradebookRepo
}

// NewService wraps a gradebook repository.
func NewService(repo store.GradebookRepo) *Service {
	return &Service{repo: repo}
}

// Record validates and stores a new mark. An empty kind defaults to an exam
// mark. The entry's ID and RecordedAt are filled in on success.
func (s *Service) Record(ctx context.Context, e *store.GradebookEntry) error {
	if e.Student == "" {
		return fmt.Errorf("student name is required")
	}
	if e.Label == "" {
		return fmt.Errorf("assessment label is required")
	}
	if e.Kind == "" {
		e.Kind = store.KindExam
	}
	if e.Kind != store.KindExam && e.Kind != store.KindAssessment {
		return fmt.Errorf("unknown entry kind %q", e.Kind)
	}
	if e.Semester < 1 || e.Semester > 3 {
		return fmt.Errorf("semester %d out of range", e.Semester)
	}
	if e.Mark < 0 || e.Mark > maxMark {
		return fmt.Errorf("mark %.2f out of range, must be between 0 and 20", e.Mark)
	}
	if quarters := e.Mark * 4; math.Abs(quarters-math.Round(quarters)) > 1e-9 {
		return fmt.Errorf("mark %.3f is not a quarter-point step", e.Mark)
	}
	return s.repo.Add(ctx, e)
}

// Remove deletes a mark by ID.
func (s *Service) Remove(ctx context.Context, id int) error {
	return s.repo.Remove(ctx, id)
}

// SubjectAverage is the mean exam mark a student holds in one subject.
type SubjectAverage struct {
	SubjectID string
	Average   float64
	Count     int
}

// Report summarizes one student's marks. Continuous-assessment entries are
// listed alongside exam marks but stay out of the averages.
type Report struct {
	Student     string
	Entries     []*store.GradebookEntry
	Assessments []*store.GradebookEntry
	Subjects    []SubjectAverage
	Overall     float64
}

// StudentReport returns a student's marks with per-subject and overall exam
// averages. A student with no marks yields an empty report, not an error.
func (s *Service) StudentReport(ctx context.Context, student string) (*Report, error) {
	entries, err := s.repo.ForStudent(ctx, student)
	if err != nil {
		return nil, err
	}

	report := &Report{Student: student, Entries: entries}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	var total float64
	var examCount int
	for _, e := range entries {
		if e.Kind == store.KindAssessment {
			report.Assessments = append(report.Assessments, e)
			continue
		}
		sums[e.SubjectID] += e.Mark
		counts[e.SubjectID]++
		total += e.Mark
		examCount++
	}

	for subjectID, sum := range sums {
		report.Subjects = append(report.Subjects, SubjectAverage{
			SubjectID: subjectID,
			Average:   sum / float64(counts[subjectID]),
			Count:     counts[subjectID],
		})
	}
	sort.Slice(report.Subjects, func(i, j int) bool {
		return report.Subjects[i].SubjectID < report.Subjects[j].SubjectID
	})
	if examCount > 0 {
		report.Overall = total / float64(examCount)
	}
	return report, nil
}

// All returns every recorded mark, ordered by student then date.
func (s *Service) All(ctx context.Context) ([]*store.GradebookEntry, error) {
	return s.repo.All(ctx)
}
