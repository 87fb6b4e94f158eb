package records_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/veridoc-co/veridoc/internal/documents"
	"github.com/veridoc-co/veridoc/internal/records"
	"github.com/veridoc-co/veridoc/pkg/pagination"
	"github.com/veridoc-co/veridoc/pkg/routes"
)

type mockSystem struct {
	listFn          func(ctx context.Context, page pagination.PageRequest, filters records.Filters) (*pagination.PageResult[records.Record], error)
	findFn          func(ctx context.Context, id uuid.UUID) (*records.Record, error)
	findBySessionFn func(ctx context.Context, sessionID string) (*records.Record, error)
	saveFn          func(ctx context.Context, cmd records.SaveCommand) (*records.Record, error)
	deleteFn        func(ctx context.Context, id uuid.UUID) error
}

func (m *mockSystem) Handler() *records.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return records.NewHandler(m, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters records.Filters) (*pagination.PageResult[records.Record], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*records.Record, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) FindBySession(ctx context.Context, sessionID string) (*records.Record, error) {
	return m.findBySessionFn(ctx, sessionID)
}

func (m *mockSystem) Save(ctx context.Context, cmd records.SaveCommand) (*records.Record, error) {
	return m.saveFn(ctx, cmd)
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func setupMux(h *records.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, h.Routes())
	return mux
}

func TestList(t *testing.T) {
	sys := &mockSystem{
		listFn: func(ctx context.Context, page pagination.PageRequest, filters records.Filters) (*pagination.PageResult[records.Record], error) {
			data := []records.Record{
				{ID: uuid.New(), SessionID: "sess-1", DocumentType: documents.CedulaCiudadania},
			}
			result := pagination.NewPageResult(data, 1, page.Page, page.PageSize)
			return &result, nil
		},
	}
	mux := setupMux(sys.Handler())

	req := httptest.NewRequest("GET", "/records", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var result pagination.PageResult[records.Record]
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(result.Data) != 1 {
		t.Errorf("records: got %d, want 1", len(result.Data))
	}
}

func TestListPassesFilters(t *testing.T) {
	var captured records.Filters
	sys := &mockSystem{
		listFn: func(ctx context.Context, page pagination.PageRequest, filters records.Filters) (*pagination.PageResult[records.Record], error) {
			captured = filters
			result := pagination.NewPageResult([]records.Record{}, 0, page.Page, page.PageSize)
			return &result, nil
		},
	}
	mux := setupMux(sys.Handler())

	req := httptest.NewRequest("GET", "/records?session_id=sess-1&document_type=cedula_ciudadania", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if captured.SessionID == nil || *captured.SessionID != "sess-1" {
		t.Errorf("sessionId filter: got %v, want sess-1", captured.SessionID)
	}
	if captured.DocumentType == nil || *captured.DocumentType != "cedula_ciudadania" {
		t.Errorf("documentType filter: got %v, want cedula_ciudadania", captured.DocumentType)
	}
}

func TestFind(t *testing.T) {
	id := uuid.New()
	sys := &mockSystem{
		findFn: func(ctx context.Context, recordID uuid.UUID) (*records.Record, error) {
			if recordID != id {
				t.Errorf("id: got %s, want %s", recordID, id)
			}
			return &records.Record{ID: recordID, SessionID: "sess-1"}, nil
		},
	}
	mux := setupMux(sys.Handler())

	req := httptest.NewRequest("GET", "/records/"+id.String(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var record records.Record
	if err := json.NewDecoder(rec.Body).Decode(&record); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if record.ID != id {
		t.Errorf("id: got %s, want %s", record.ID, id)
	}
}

func TestFindInvalidID(t *testing.T) {
	sys := &mockSystem{}
	mux := setupMux(sys.Handler())

	req := httptest.NewRequest("GET", "/records/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestFindNotFound(t *testing.T) {
	sys := &mockSystem{
		findFn: func(ctx context.Context, id uuid.UUID) (*records.Record, error) {
			return nil, records.ErrNotFound
		},
	}
	mux := setupMux(sys.Handler())

	req := httptest.NewRequest("GET", "/records/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

func TestSearch(t *testing.T) {
	var capturedPage pagination.PageRequest
	sys := &mockSystem{
		listFn: func(ctx context.Context, page pagination.PageRequest, filters records.Filters) (*pagination.PageResult[records.Record], error) {
			capturedPage = page
			result := pagination.NewPageResult([]records.Record{}, 0, page.Page, page.PageSize)
			return &result, nil
		},
	}
	mux := setupMux(sys.Handler())

	body := strings.NewReader(`{"page":3,"page_size":50,"session_id":"sess-1"}`)
	req := httptest.NewRequest("POST", "/records/search", body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if capturedPage.Page != 3 {
		t.Errorf("page: got %d, want 3", capturedPage.Page)
	}
	if capturedPage.PageSize != 50 {
		t.Errorf("pageSize: got %d, want 50", capturedPage.PageSize)
	}
}

func TestDelete(t *testing.T) {
	deleted := uuid.Nil
	sys := &mockSystem{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = id
			return nil
		},
	}
	mux := setupMux(sys.Handler())

	id := uuid.New()
	req := httptest.NewRequest("DELETE", "/records/"+id.String(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want 204", rec.Code)
	}
	if deleted != id {
		t.Errorf("deleted id: got %s, want %s", deleted, id)
	}
}
