package sessions_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/veridoc-co/veridoc/internal/sessions"
)

func TestExpired(t *testing.T) {
	base := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	session := &sessions.Session{ExpiresAt: base}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before expiry", base.Add(-time.Minute), false},
		{"at expiry", base, false},
		{"after expiry", base.Add(time.Second), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := session.Expired(tc.now); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSessionRoundTripsThroughJSON(t *testing.T) {
	front := "sessions/abc/enhanced_front.jpg"
	session := sessions.Session{
		ID:        "abc",
		FlowState: sessions.StateAwaitingSecondSide,
		Sides:     sessions.Sides{Front: &front},
		CreatedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(session)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded sessions.Session
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.FlowState != sessions.StateAwaitingSecondSide {
		t.Errorf("flow state: got %s, want %s", decoded.FlowState, sessions.StateAwaitingSecondSide)
	}
	if decoded.Sides.Front == nil || *decoded.Sides.Front != front {
		t.Errorf("front side: got %v, want %s", decoded.Sides.Front, front)
	}
	if decoded.Sides.Back != nil {
		t.Errorf("back side: got %v, want nil", decoded.Sides.Back)
	}
}
