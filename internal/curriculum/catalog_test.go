package curriculum

import "testing"

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(c.Specialties) != 7 {
		t.Errorf("specialties = %d, want 7", len(c.Specialties))
	}
	if len(c.Subjects) == 0 {
		t.Fatal("expected subjects")
	}
}

func TestSpecialtyByID(t *testing.T) {
	c := mustCatalog(t)
	if s := c.SpecialtyByID("lettres-philosophie"); s == nil {
		t.Fatal("expected lettres-philosophie to exist")
	}
	if s := c.SpecialtyByID("nope"); s != nil {
		t.Fatalf("expected nil for unknown id, got %+v", s)
	}
}

func TestSubjectsFor(t *testing.T) {
	c := mustCatalog(t)

	forGestion := c.SubjectsFor("gestion-economie")
	found := false
	for _, s := range forGestion {
		if s.ID == "physics" {
			t.Error("physics must not be taught in gestion-economie")
		}
		if s.ID == "economics" {
			found = true
		}
	}
	if !found {
		t.Error("economics missing for gestion-economie")
	}

	// Empty id returns everything, for teachers browsing the program.
	if got, want := len(c.SubjectsFor("")), len(c.Subjects); got != want {
		t.Errorf("SubjectsFor(\"\") = %d subjects, want %d", got, want)
	}
}

func TestFindLesson(t *testing.T) {
	c := mustCatalog(t)

	u, l := c.FindLesson("math", "ml12")
	if u == nil || l == nil {
		t.Fatal("expected to find ml12 in math")
	}
	if u.ID != "m6" {
		t.Errorf("unit = %q, want m6", u.ID)
	}

	if u, l := c.FindLesson("math", "pl1"); u != nil || l != nil {
		t.Error("pl1 does not belong to math")
	}
	if u, l := c.FindLesson("nope", "ml1"); u != nil || l != nil {
		t.Error("unknown subject must yield nil")
	}
}

func TestLessonsForSemester(t *testing.T) {
	c := mustCatalog(t)
	math := c.SubjectByID("math")
	if math == nil {
		t.Fatal("math subject missing")
	}

	sem1 := math.LessonsForSemester(1)
	if len(sem1) != 5 {
		t.Errorf("semester 1 lessons = %d, want 5", len(sem1))
	}
	if len(math.LessonsForSemester(0)) != 0 {
		t.Error("semester 0 must have no lessons")
	}
}

func TestScientificFlag(t *testing.T) {
	c := mustCatalog(t)
	if !c.SubjectByID("math").Scientific {
		t.Error("math must be scientific")
	}
	if c.SubjectByID("philosophy").Scientific {
		t.Error("philosophy must not be scientific")
	}
}

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}
