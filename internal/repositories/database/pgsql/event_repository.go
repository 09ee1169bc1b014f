package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_settlement_app/internal/apperrors"
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_settlement_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_settlement_app/internal/models"
	"github.com/SscSPs/expense_settlement_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEventRepository reads events.
type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(pool *pgxpool.Pool) *PgxEventRepository {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EventReader = (*PgxEventRepository)(nil)

// FindEventByID retrieves an event regardless of its active flag.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `
		SELECT event_id, owner_user_id, name, description, default_currency, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM events
		WHERE event_id = $1;
	`
	var m models.Event
	err := r.Pool.QueryRow(ctx, query, eventID).Scan(
		&m.EventID, &m.OwnerUserID, &m.Name, &m.Description, &m.DefaultCurrency, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("event " + eventID + " not found")
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	event := mapping.ToDomainEvent(m)
	return &event, nil
}
