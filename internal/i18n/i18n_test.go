package i18n

import "testing"

func TestInitArabicDefault(t *testing.T) {
	if err := Init("ar"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if got := T("role.student"); got != "طالب" {
		t.Errorf("role.student = %q", got)
	}
}

func TestFrenchCatalog(t *testing.T) {
	if err := Init("fr"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if got := T("role.student"); got != "Élève" {
		t.Errorf("role.student = %q", got)
	}
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	if err := Init("zz-not-a-tag"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if got := T("role.teacher"); got != "أستاذ" {
		t.Errorf("role.teacher = %q", got)
	}
}

func TestMissingIDReturnsID(t *testing.T) {
	if err := Init("ar"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if got := T("no.such.key"); got != "no.such.key" {
		t.Errorf("missing key = %q", got)
	}
}

func TestTemplateData(t *testing.T) {
	if err := Init("ar"); err != nil {
		t.Fatalf("init: %v", err)
	}
	got := Td("quiz.score", map[string]any{"Correct": 7, "Total": 10})
	if got != "نتيجتك: 7 من 10" {
		t.Errorf("quiz.score = %q", got)
	}
}
