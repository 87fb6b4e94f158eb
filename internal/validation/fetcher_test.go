package validation_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/veridoc-co/veridoc/internal/validation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetchImage(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg; charset=binary")
		w.Write(payload)
	}))
	defer server.Close()

	fetcher := validation.NewFetcher(1<<20, testLogger())

	data, mimeType, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Error("downloaded bytes do not match served payload")
	}
	if mimeType != "image/jpeg" {
		t.Errorf("mime type: got %s, want image/jpeg", mimeType)
	}
}

func TestFetchPDF(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.7"))
	}))
	defer server.Close()

	fetcher := validation.NewFetcher(1<<20, testLogger())

	_, mimeType, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mimeType != "application/pdf" {
		t.Errorf("mime type: got %s, want application/pdf", mimeType)
	}
}

func TestFetchUnsupportedType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	fetcher := validation.NewFetcher(1<<20, testLogger())

	_, _, err := fetcher.Fetch(context.Background(), server.URL)
	if !errors.Is(err, validation.ErrUnsupportedType) {
		t.Fatalf("error: got %v, want ErrUnsupportedType", err)
	}

	var fe *validation.FetchError
	if !errors.As(err, &fe) {
		t.Fatal("error is not a FetchError")
	}
	want := "Tipo de archivo no soportado: text/html. Solo se aceptan imágenes y PDFs."
	if fe.Feedback != want {
		t.Errorf("feedback: got %q, want %q", fe.Feedback, want)
	}
}

func TestFetchTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(make([]byte, 2048))
	}))
	defer server.Close()

	fetcher := validation.NewFetcher(1024, testLogger())

	_, _, err := fetcher.Fetch(context.Background(), server.URL)
	if !errors.Is(err, validation.ErrFileTooLarge) {
		t.Fatalf("error: got %v, want ErrFileTooLarge", err)
	}
}

func TestFetchTooLargeStopsAtCap(t *testing.T) {
	const maxSize = 1 << 20
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(make([]byte, 3*maxSize))
	}))
	defer server.Close()

	fetcher := validation.NewFetcher(maxSize, testLogger())

	_, _, err := fetcher.Fetch(context.Background(), server.URL)
	if !errors.Is(err, validation.ErrFileTooLarge) {
		t.Fatalf("error: got %v, want ErrFileTooLarge", err)
	}

	var fe *validation.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error type: got %T, want *FetchError", err)
	}
	if !strings.Contains(fe.Feedback, "(1.0 MB)") {
		t.Errorf("feedback: got %q, want size reported at the read cap", fe.Feedback)
	}
}

func TestFetchHTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := validation.NewFetcher(1<<20, testLogger())

	_, _, err := fetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var fe *validation.FetchError
	if errors.As(err, &fe) {
		t.Error("transport failure should not be a FetchError")
	}
}

func TestFetchMissingContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		w.Write([]byte("data"))
	}))
	defer server.Close()

	fetcher := validation.NewFetcher(1<<20, testLogger())

	_, _, err := fetcher.Fetch(context.Background(), server.URL)
	if !errors.Is(err, validation.ErrUnsupportedType) {
		t.Fatalf("error: got %v, want ErrUnsupportedType", err)
	}
}
