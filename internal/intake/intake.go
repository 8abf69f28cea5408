// Package intake stages the source document for a session. Only PDF
// files are accepted; everything else is rejected before a session
// leaves the landing screen.
package intake

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxSize is the largest accepted document, matching the limit the
// analysis service advertises.
const MaxSize = 50 << 20 // 50 MB

const pdfMediaType = "application/pdf"

var (
	// ErrInvalidDocumentType means the file is not a PDF.
	ErrInvalidDocumentType = errors.New("only PDF documents are accepted")

	// ErrTooLarge means the file exceeds MaxSize.
	ErrTooLarge = fmt.Errorf("document exceeds the %d MB limit", MaxSize>>20)
)

// Document describes a staged source file.
type Document struct {
	Name      string
	Path      string
	Size      int64
	MediaType string
}

// Stage validates the file at path and returns its Document. The check
// is content-based: the first bytes must carry the %PDF- signature, the
// extension alone is not trusted.
func Stage(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}
	if info.IsDir() {
		return nil, ErrInvalidDocumentType
	}
	if info.Size() > MaxSize {
		return nil, ErrTooLarge
	}

	mediaType, err := sniffMediaType(f)
	if err != nil {
		return nil, err
	}
	if mediaType != pdfMediaType {
		return nil, ErrInvalidDocumentType
	}

	return &Document{
		Name:      filepath.Base(path),
		Path:      path,
		Size:      info.Size(),
		MediaType: mediaType,
	}, nil
}

// sniffMediaType reads the leading bytes and detects the content type.
// http.DetectContentType recognizes the %PDF- signature.
func sniffMediaType(r io.Reader) (string, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read document header: %w", err)
	}
	mediaType := http.DetectContentType(buf[:n])
	// DetectContentType may append parameters (e.g. "; charset=...").
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	return mediaType, nil
}
