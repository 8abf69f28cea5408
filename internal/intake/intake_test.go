package intake

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func pdfBytes() []byte {
	return []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n")
}

func TestStagePDF(t *testing.T) {
	path := writeFile(t, "notes.pdf", pdfBytes())

	doc, err := Stage(path)
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if doc.Name != "notes.pdf" {
		t.Errorf("name = %q", doc.Name)
	}
	if doc.MediaType != "application/pdf" {
		t.Errorf("media type = %q", doc.MediaType)
	}
	if doc.Size == 0 {
		t.Error("size not recorded")
	}
}

func TestStageRejectsNonPDF(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content []byte
	}{
		{"plain text", "notes.txt", []byte("just some text, definitely not a pdf")},
		{"misnamed text", "fake.pdf", []byte("this extension is lying")},
		{"png", "image.png", []byte("\x89PNG\r\n\x1a\n0000")},
		{"empty file", "empty.pdf", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Stage(path)
			if !errors.Is(err, ErrInvalidDocumentType) {
				t.Errorf("Stage error = %v, want ErrInvalidDocumentType", err)
			}
		})
	}
}

func TestStageMissingFile(t *testing.T) {
	_, err := Stage(filepath.Join(t.TempDir(), "nope.pdf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, ErrInvalidDocumentType) || errors.Is(err, ErrTooLarge) {
		t.Errorf("missing file should be an open error, got %v", err)
	}
}

func TestStageRejectsDirectory(t *testing.T) {
	_, err := Stage(t.TempDir())
	if !errors.Is(err, ErrInvalidDocumentType) {
		t.Errorf("Stage(dir) error = %v, want ErrInvalidDocumentType", err)
	}
}

func TestStageRejectsOversize(t *testing.T) {
	path := writeFile(t, "big.pdf", pdfBytes())
	// Sparse-extend past the limit without writing 50MB.
	if err := os.Truncate(path, MaxSize+1); err != nil {
		t.Skipf("cannot extend file: %v", err)
	}

	_, err := Stage(path)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("Stage error = %v, want ErrTooLarge", err)
	}
}
