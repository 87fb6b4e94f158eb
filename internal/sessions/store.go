package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/veridoc-co/veridoc/internal/documents"
	"github.com/veridoc-co/veridoc/pkg/lifecycle"
)

const keyPrefix = "session:"

// System manages session records and lifecycle coordination.
type System interface {
	// Start registers connection hooks with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
	// Create stores a fresh session in AWAITING_FIRST_UPLOAD.
	Create(ctx context.Context) (*Session, error)
	// Get returns the session, or ErrNotFound when missing or expired.
	// An expired record is deleted as a side effect of the lookup.
	Get(ctx context.Context, id string) (*Session, error)
	// Update persists the session with last-write-wins semantics.
	Update(ctx context.Context, s *Session) error
	// Delete removes the session record.
	Delete(ctx context.Context, id string) error
}

// connection is the slice of the redis client surface the store issues
// commands against.
type connection interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type store struct {
	client connection
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Redis-backed session store. The client connection is not
// verified until Start runs.
func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) System {
	return &store{
		client: client,
		ttl:    ttl,
		logger: logger.With("system", "sessions"),
		now:    time.Now,
	}
}

func (s *store) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting session store")

	lc.OnStartup(func() {
		if err := s.client.Ping(lc.Context()).Err(); err != nil {
			s.logger.Error("session store ping failed", "error", err)
			return
		}
		s.logger.Info("session store ready")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := s.client.Close(); err != nil {
			s.logger.Error("session store close failed", "error", err)
			return
		}
		s.logger.Info("session store closed")
	})

	return nil
}

func (s *store) Create(ctx context.Context) (*Session, error) {
	now := s.now()
	session := &Session{
		ID:           uuid.NewString(),
		FlowState:    StateAwaitingFirstUpload,
		DocumentType: documents.TypeUnknown,
		CreatedAt:    now,
		UpdatedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
	}

	if err := s.write(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("session created", "session_id", session.ID)
	return session, nil
}

func (s *store) Get(ctx context.Context, id string) (*Session, error) {
	val, err := s.client.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}

	var session Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}

	if session.Expired(s.now()) {
		s.logger.Info("session expired", "session_id", id)
		if err := s.Delete(ctx, id); err != nil {
			s.logger.Warn("expired session cleanup failed", "session_id", id, "error", err)
		}
		return nil, ErrNotFound
	}

	return &session, nil
}

func (s *store) Update(ctx context.Context, session *Session) error {
	session.UpdatedAt = s.now()
	if err := s.write(ctx, session); err != nil {
		return fmt.Errorf("update session %s: %w", session.ID, err)
	}
	return nil
}

func (s *store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

// write persists the record with the remaining lifetime as the native key
// TTL, keeping Redis expiry as a backstop behind the lazy ExpiresAt check.
func (s *store) write(ctx context.Context, session *Session) error {
	val, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		ttl = time.Second
	}

	return s.client.Set(ctx, keyPrefix+session.ID, val, ttl).Err()
}
