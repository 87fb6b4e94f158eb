package records

import (
	"context"

	"github.com/google/uuid"

	"github.com/veridoc-co/veridoc/pkg/pagination"
)

// System defines the public contract for validation record operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Record], error)

	Find(ctx context.Context, id uuid.UUID) (*Record, error)
	FindBySession(ctx context.Context, sessionID string) (*Record, error)
	Save(ctx context.Context, cmd SaveCommand) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
