package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/veridoc-co/veridoc/internal/sessions"
)

// User-facing feedback for session resolution verdicts.
const (
	feedbackSessionExpired = "La sesión no existe o ha expirado. Envía el documento nuevamente para iniciar una nueva sesión."
	feedbackSessionDone    = "Esta sesión ya fue completada. Envía el documento nuevamente para iniciar una nueva validación."
	feedbackUnexpected     = "Estado de sesión inesperado. Por favor, inicia una nueva sesión."
)

// ResolveNode returns a state node that loads or creates the upload's
// session. Terminal conditions (expired, already completed, unexpected
// state) produce an Outcome directly, which routes the graph straight to
// the exit without classification.
func ResolveNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		upload, err := stateValue[Upload](s, KeyUpload)
		if err != nil {
			return s, fmt.Errorf("resolve: %w", err)
		}

		session, outcome, err := resolveSession(ctx, rt, upload)
		if err != nil {
			return s, fmt.Errorf("resolve: %w: %w", ErrResolveFailed, err)
		}

		if outcome != nil {
			return s.Set(KeyOutcome, *outcome), nil
		}

		rt.Logger.InfoContext(
			ctx, "session resolved",
			"session_id", session.ID,
			"flow_state", session.FlowState,
		)

		return s.Set(KeySession, *session), nil
	})
}

func resolveSession(
	ctx context.Context,
	rt *Runtime,
	upload Upload,
) (*sessions.Session, *Outcome, error) {
	var (
		session *sessions.Session
		err     error
	)

	if upload.SessionID != "" {
		session, err = rt.Sessions.Get(ctx, upload.SessionID)
		if errors.Is(err, sessions.ErrNotFound) {
			return nil, &Outcome{
				SessionID: upload.SessionID,
				Status:    StatusError,
				Feedback:  feedbackSessionExpired,
			}, nil
		}
		if err != nil {
			return nil, nil, err
		}
	} else {
		session, err = rt.Sessions.Create(ctx)
		if err != nil {
			return nil, nil, err
		}
	}

	switch session.FlowState {
	case sessions.StateCompleted:
		return nil, &Outcome{
			SessionID:    session.ID,
			Status:       StatusCompleted,
			DocumentType: session.DocumentType,
			Feedback:     feedbackSessionDone,
		}, nil
	case sessions.StateAwaitingFirstUpload, sessions.StateAwaitingSecondSide:
		return session, nil, nil
	default:
		return nil, &Outcome{
			SessionID: session.ID,
			Status:    StatusError,
			Feedback:  feedbackUnexpected,
		}, nil
	}
}
