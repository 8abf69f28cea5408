package analysis

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/studialabs/studia/internal/intake"
)

// DefaultTimeout bounds one remote analysis call. The service warns
// that large documents can take up to half a minute.
const DefaultTimeout = 60 * time.Second

// RemoteAnalyzer calls the analysis service over HTTP: the document is
// sent as a multipart upload to {base}/upload and the response carries
// the generated questions and summary.
type RemoteAnalyzer struct {
	baseURL string
	client  *http.Client
}

// NewRemoteAnalyzer creates a RemoteAnalyzer for the given base URL.
// A nil client gets a default with DefaultTimeout.
func NewRemoteAnalyzer(baseURL string, client *http.Client) *RemoteAnalyzer {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &RemoteAnalyzer{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Analyze uploads the document and decodes the generated quiz. Any
// non-2xx status or unreachable server is a *CallError; a 2xx response
// with no usable questions surfaces the quiz parser's error instead.
func (a *RemoteAnalyzer) Analyze(ctx context.Context, doc *intake.Document) (*Result, error) {
	body, contentType, err := buildUpload(doc)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/upload", body)
	if err != nil {
		return nil, fmt.Errorf("build analysis request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &CallError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, &CallError{Status: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &CallError{Err: fmt.Errorf("read analysis response: %w", err)}
	}

	return decodePayload(raw)
}

// buildUpload assembles the multipart body with the document under the
// "file" field, the name the service expects.
func buildUpload(doc *intake.Document) (*bytes.Buffer, string, error) {
	f, err := os.Open(doc.Path)
	if err != nil {
		return nil, "", fmt.Errorf("open staged document: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", doc.Name)
	if err != nil {
		return nil, "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("copy document into upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize upload: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
