package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestText_PlainFile(t *testing.T) {
	path := writeFile(t, "program.txt", "  البرنامج السنوي لمادة الرياضيات\nالفصل الأول: النهايات\n")

	got, err := New().Text(context.Background(), path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.HasPrefix(got, "البرنامج السنوي") {
		t.Errorf("leading whitespace not trimmed: %q", got)
	}
	if !strings.Contains(got, "النهايات") {
		t.Errorf("content lost: %q", got)
	}
}

func TestText_MissingFile(t *testing.T) {
	_, err := New().Text(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))

	var extErr *Error
	if !errors.As(err, &extErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
}

func TestText_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", "   \n\t\n")

	var extErr *Error
	if _, err := New().Text(context.Background(), path); !errors.As(err, &extErr) {
		t.Fatalf("expected *Error for whitespace-only file, got %v", err)
	}
}

func TestText_PDFWithoutBinary(t *testing.T) {
	path := writeFile(t, "lesson.pdf", "%PDF-1.4")
	x := &Extractor{pdftotext: ""}

	var extErr *Error
	if _, err := x.Text(context.Background(), path); !errors.As(err, &extErr) {
		t.Fatalf("expected *Error when pdftotext is absent, got %v", err)
	}
}

func TestText_InvalidUTF8Dropped(t *testing.T) {
	path := writeFile(t, "mixed.txt", "نص سليم\xff\xfeتتمة")

	got, err := New().Text(context.Background(), path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if strings.ContainsRune(got, '�') || strings.Contains(got, "\xff") {
		t.Errorf("invalid bytes survived: %q", got)
	}
}

func TestText_TruncatesLargeInput(t *testing.T) {
	line := strings.Repeat("كلمة ", 100) + "\n"
	big := strings.Repeat(line, maxTextBytes/len(line)+10)
	path := writeFile(t, "big.txt", big)

	got, err := New().Text(context.Background(), path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(got) > maxTextBytes {
		t.Errorf("len = %d, want <= %d", len(got), maxTextBytes)
	}
}

func TestText_TruncationKeepsRunesIntact(t *testing.T) {
	// A single line of two-byte Arabic runes offset by one ASCII byte, so
	// the byte limit lands inside a rune.
	big := "a" + strings.Repeat("ع", maxTextBytes)
	path := writeFile(t, "solid.txt", big)

	got, err := New().Text(context.Background(), path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(got) > maxTextBytes {
		t.Errorf("len = %d, want <= %d", len(got), maxTextBytes)
	}
	if !utf8.ValidString(got) {
		t.Error("truncation split a multi-byte rune")
	}
}
