package curriculum

import (
	"testing"

	"github.com/bacdz/eduai/internal/auth"
)

func mustFilter(t *testing.T) *Filter {
	t.Helper()
	f, err := LoadFilter()
	if err != nil {
		t.Fatalf("load filter: %v", err)
	}
	return f
}

func unitIDs(units []Unit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.ID
	}
	return out
}

func hasUnit(units []Unit, id string) bool {
	for _, u := range units {
		if u.ID == id {
			return true
		}
	}
	return false
}

func TestVisibleUnits_MathDroppedForLiteraryTrack(t *testing.T) {
	c, f := mustCatalog(t), mustFilter(t)
	math := c.SubjectByID("math")

	units := f.VisibleUnits(math, "lettres-philosophie", auth.RoleStudent)
	if hasUnit(units, "m6") {
		t.Errorf("m6 must be hidden from lettres-philosophie, got %v", unitIDs(units))
	}
	if len(units) != len(math.Curriculum)-1 {
		t.Errorf("expected %d units, got %d", len(math.Curriculum)-1, len(units))
	}
}

func TestVisibleUnits_MathKeptForMathTracks(t *testing.T) {
	c, f := mustCatalog(t), mustFilter(t)
	math := c.SubjectByID("math")

	for _, spec := range []string{"mathematiques", "technique-math"} {
		units := f.VisibleUnits(math, spec, auth.RoleStudent)
		if !hasUnit(units, "m6") {
			t.Errorf("%s: m6 must be visible, got %v", spec, unitIDs(units))
		}
	}
}

func TestVisibleUnits_PhilosophySystemsUnit(t *testing.T) {
	c, f := mustCatalog(t), mustFilter(t)
	philo := c.SubjectByID("philosophy")

	if units := f.VisibleUnits(philo, "lettres-philosophie", auth.RoleStudent); !hasUnit(units, "ph4") {
		t.Error("ph4 must be visible to lettres-philosophie")
	}
	if units := f.VisibleUnits(philo, "sciences-exp", auth.RoleStudent); hasUnit(units, "ph4") {
		t.Error("ph4 must be hidden from sciences-exp")
	}
}

func TestVisibleUnits_FrenchLessonFiltered(t *testing.T) {
	c, f := mustCatalog(t), mustFilter(t)
	french := c.SubjectByID("french")

	lessonsOf := func(units []Unit, unitID string) []Lesson {
		for _, u := range units {
			if u.ID == unitID {
				return u.Lessons
			}
		}
		return nil
	}

	units := f.VisibleUnits(french, "sciences-exp", auth.RoleStudent)
	for _, l := range lessonsOf(units, "fr1") {
		if l.ID == "frl4" {
			t.Error("frl4 must be hidden outside langues-etrangeres")
		}
	}

	units = f.VisibleUnits(french, "langues-etrangeres", auth.RoleStudent)
	found := false
	for _, l := range lessonsOf(units, "fr1") {
		if l.ID == "frl4" {
			found = true
		}
	}
	if !found {
		t.Error("frl4 must be visible to langues-etrangeres")
	}
}

func TestVisibleUnits_RulelessSubjectPassthrough(t *testing.T) {
	c, f := mustCatalog(t), mustFilter(t)
	physics := c.SubjectByID("physics")

	units := f.VisibleUnits(physics, "sciences-exp", auth.RoleStudent)
	if len(units) != len(physics.Curriculum) {
		t.Errorf("expected passthrough, got %v", unitIDs(units))
	}
}

func TestVisibleUnits_UnknownSpecialtyMostRestrictive(t *testing.T) {
	c, f := mustCatalog(t), mustFilter(t)
	math := c.SubjectByID("math")

	units := f.VisibleUnits(math, "specialty-from-the-future", auth.RoleStudent)
	if hasUnit(units, "m6") {
		t.Error("unknown specialty must drop restricted units")
	}
	if len(units) != len(math.Curriculum)-1 {
		t.Errorf("only restricted units drop for unknown specialty, got %v", unitIDs(units))
	}
}

func TestVisibleUnits_EmptyInputs(t *testing.T) {
	c, f := mustCatalog(t), mustFilter(t)
	math := c.SubjectByID("math")

	if units := f.VisibleUnits(nil, "sciences-exp", auth.RoleStudent); units != nil {
		t.Error("nil subject must yield nil")
	}
	if units := f.VisibleUnits(&Subject{ID: "math"}, "sciences-exp", auth.RoleStudent); units != nil {
		t.Error("subject without curriculum must yield nil")
	}

	// Teachers browsing before picking a track see everything.
	if units := f.VisibleUnits(math, "", auth.RoleTeacher); len(units) != len(math.Curriculum) {
		t.Errorf("teacher with no specialty must see all units, got %v", unitIDs(units))
	}
	if units := f.VisibleUnits(math, "", auth.RoleStudent); units != nil {
		t.Error("student with no specialty must see nothing")
	}
}

func TestVisibleUnits_Idempotent(t *testing.T) {
	c, f := mustCatalog(t), mustFilter(t)
	math := c.SubjectByID("math")

	once := f.VisibleUnits(math, "lettres-philosophie", auth.RoleStudent)
	twice := f.VisibleUnits(&Subject{ID: "math", Curriculum: once}, "lettres-philosophie", auth.RoleStudent)

	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %v then %v", unitIDs(once), unitIDs(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID || len(once[i].Lessons) != len(twice[i].Lessons) {
			t.Fatalf("unit %s changed on second pass", once[i].ID)
		}
	}
}

func TestVisibleUnits_DoesNotMutateCatalog(t *testing.T) {
	c, f := mustCatalog(t), mustFilter(t)
	french := c.SubjectByID("french")
	before := len(french.Curriculum[0].Lessons)

	f.VisibleUnits(french, "sciences-exp", auth.RoleStudent)

	if len(french.Curriculum[0].Lessons) != before {
		t.Error("filter mutated the catalog")
	}
}
