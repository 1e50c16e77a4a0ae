// Package extract pulls plain text out of uploaded lesson material.
// Plain-text files are read directly; PDFs go through the pdftotext binary.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Extracted text beyond this is truncated before prompting.
const maxTextBytes = 256 << 10

// Error reports a failed extraction. The caller surfaces it and keeps the
// session where it was.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Extractor converts uploaded files to prompt-ready text.
type Extractor struct {
	pdftotext string
}

// New locates the pdftotext binary on PATH. PDFs fail with a clear error
// when it is missing; plain text still works.
func New() *Extractor {
	bin, err := exec.LookPath("pdftotext")
	if err != nil {
		bin = ""
	}
	return &Extractor{pdftotext: bin}
}

// Text extracts the textual content of the file at path.
func (x *Extractor) Text(ctx context.Context, path string) (string, error) {
	var raw []byte
	var err error

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		raw, err = x.fromPDF(ctx, path)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return "", &Error{Path: path, Err: err}
	}

	text := strings.ToValidUTF8(string(raw), "")
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &Error{Path: path, Err: fmt.Errorf("no extractable text")}
	}
	if len(text) > maxTextBytes {
		text = text[:maxTextBytes]
		if i := strings.LastIndexByte(text, '\n'); i > 0 {
			text = text[:i]
		} else {
			// No newline to cut at; the byte limit may have split a rune.
			text = strings.ToValidUTF8(text, "")
		}
	}
	return text, nil
}

func (x *Extractor) fromPDF(ctx context.Context, path string) ([]byte, error) {
	if x.pdftotext == "" {
		return nil, fmt.Errorf("pdftotext not found on PATH")
	}

	var out, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, x.pdftotext, "-layout", "-enc", "UTF-8", path, "-")
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("pdftotext: %s", msg)
		}
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	return out.Bytes(), nil
}
