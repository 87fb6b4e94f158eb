package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/veridoc-co/veridoc/internal/documents"
)

// fakeConnection keeps session values in a map and records issued deletes.
type fakeConnection struct {
	values map[string]string
	dels   []string
}

func newFakeConnection() *fakeConnection {
	return &fakeConnection{values: map[string]string{}}
}

func (f *fakeConnection) Get(ctx context.Context, key string) *redis.StringCmd {
	val, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeConnection) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeConnection) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		f.dels = append(f.dels, key)
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func (f *fakeConnection) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeConnection) Close() error { return nil }

func testStore(conn connection) *store {
	return &store{
		client: conn,
		ttl:    time.Hour,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
}

func seedSession(t *testing.T, conn *fakeConnection, session *Session) {
	t.Helper()

	val, err := json.Marshal(session)
	if err != nil {
		t.Fatalf("encode session: %v", err)
	}
	conn.values[keyPrefix+session.ID] = string(val)
}

func TestGetExpiredDeletesRecord(t *testing.T) {
	conn := newFakeConnection()
	s := testStore(conn)

	seedSession(t, conn, &Session{
		ID:           "old",
		FlowState:    StateAwaitingSecondSide,
		DocumentType: documents.CedulaCiudadania,
		ExpiresAt:    time.Now().Add(-time.Minute),
	})

	got, err := s.Get(context.Background(), "old")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error: got %v, want ErrNotFound", err)
	}
	if got != nil {
		t.Errorf("session: got %+v, want nil", got)
	}

	if len(conn.dels) != 1 || conn.dels[0] != keyPrefix+"old" {
		t.Errorf("deleted keys: got %v, want [%s]", conn.dels, keyPrefix+"old")
	}
	if _, ok := conn.values[keyPrefix+"old"]; ok {
		t.Error("expired record still stored after lookup")
	}
}

func TestGetLiveSession(t *testing.T) {
	conn := newFakeConnection()
	s := testStore(conn)

	seedSession(t, conn, &Session{
		ID:        "live",
		FlowState: StateAwaitingFirstUpload,
		ExpiresAt: time.Now().Add(time.Hour),
	})

	got, err := s.Get(context.Background(), "live")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "live" || got.FlowState != StateAwaitingFirstUpload {
		t.Errorf("session: got %+v, want stored record", got)
	}
	if len(conn.dels) != 0 {
		t.Errorf("deleted keys: got %v, want none", conn.dels)
	}
}

func TestGetMissingSession(t *testing.T) {
	conn := newFakeConnection()
	s := testStore(conn)

	if _, err := s.Get(context.Background(), "absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error: got %v, want ErrNotFound", err)
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	conn := newFakeConnection()
	s := testStore(conn)

	created, err := s.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FlowState != StateAwaitingFirstUpload {
		t.Errorf("flow state: got %s, want %s", got.FlowState, StateAwaitingFirstUpload)
	}
	if got.DocumentType != documents.TypeUnknown {
		t.Errorf("document type: got %s, want %s", got.DocumentType, documents.TypeUnknown)
	}
}
