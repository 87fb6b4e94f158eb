package validation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const downloadTimeout = 30 * time.Second

var allowedMimePrefixes = []string{"image/", "application/pdf"}

// Fetcher downloads validation payloads from caller-supplied URLs, enforcing
// the content type and size limits before any bytes reach the flow.
type Fetcher struct {
	client  *http.Client
	maxSize int64
	logger  *slog.Logger
}

// NewFetcher creates a Fetcher enforcing maxSize bytes per download, with
// the download timeout applied.
func NewFetcher(maxSize int64, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: downloadTimeout},
		maxSize: maxSize,
		logger:  logger.With("system", "fetcher"),
	}
}

// Fetch downloads the file at url and returns its bytes and media type.
// Policy violations return a *FetchError carrying user-facing feedback;
// transport failures return plain errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, "", fmt.Errorf("download %s: status %d", url, resp.StatusCode)
	}

	contentType := mediaType(resp.Header.Get("Content-Type"))
	if !allowedType(contentType) {
		return nil, "", &FetchError{
			Feedback: fmt.Sprintf(
				"Tipo de archivo no soportado: %s. Solo se aceptan imágenes y PDFs.",
				contentType,
			),
			Err: ErrUnsupportedType,
		}
	}

	// Reading one byte past the limit detects oversize bodies without
	// buffering an unbounded response.
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", url, err)
	}

	if int64(len(data)) > f.maxSize {
		return nil, "", &FetchError{
			Feedback: fmt.Sprintf(
				"El archivo es demasiado grande (%.1f MB). Máximo permitido: %.0f MB.",
				float64(len(data))/1024/1024,
				float64(f.maxSize)/1024/1024,
			),
			Err: ErrFileTooLarge,
		}
	}

	f.logger.Info(
		"file downloaded",
		"content_type", contentType,
		"size_kb", fmt.Sprintf("%.1f", float64(len(data))/1024),
	)

	return data, contentType, nil
}

func mediaType(header string) string {
	t := strings.TrimSpace(strings.Split(header, ";")[0])
	if t == "" {
		return "application/octet-stream"
	}
	return t
}

func allowedType(contentType string) bool {
	for _, prefix := range allowedMimePrefixes {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}
	return false
}
