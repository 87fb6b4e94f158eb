package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/veridoc-co/veridoc/pkg/pagination"
	"github.com/veridoc-co/veridoc/pkg/query"
	"github.com/veridoc-co/veridoc/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a record repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "records"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Record], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Label", "SessionID")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	recs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}

	result := pagination.NewPageResult(recs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Record, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	rec, err := repository.QueryOne(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &rec, nil
}

func (r *repo) FindBySession(ctx context.Context, sessionID string) (*Record, error) {
	q, args := query.NewBuilder(projection).BuildSingle("SessionID", sessionID)

	rec, err := repository.QueryOne(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &rec, nil
}

func (r *repo) Save(ctx context.Context, cmd SaveCommand) (*Record, error) {
	extracted, err := json.Marshal(cmd.ExtractedData)
	if err != nil {
		return nil, fmt.Errorf("marshal extracted data: %w", err)
	}

	alerts, err := json.Marshal(cmd.Alerts)
	if err != nil {
		return nil, fmt.Errorf("marshal alerts: %w", err)
	}

	q := `
		INSERT INTO validation_records(id, session_id, document_type, label, extracted_data, alerts, pdf_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_id) DO UPDATE SET
			document_type = EXCLUDED.document_type,
			label = EXCLUDED.label,
			extracted_data = EXCLUDED.extracted_data,
			alerts = EXCLUDED.alerts,
			pdf_key = EXCLUDED.pdf_key,
			updated_at = now()
		RETURNING id, session_id, document_type, label, extracted_data, alerts, pdf_key, created_at, updated_at`

	insertArgs := []any{
		uuid.New(),
		cmd.SessionID,
		string(cmd.DocumentType),
		cmd.Label,
		extracted,
		alerts,
		cmd.PDFKey,
	}

	rec, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Record, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanRecord)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("record saved", "id", rec.ID, "session_id", rec.SessionID)
	return &rec, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM validation_records WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("record deleted", "id", id)
	return nil
}
