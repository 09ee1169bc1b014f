package repositories

import (
	"context"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
)

// EventReader defines read operations for event data
type EventReader interface {
	// FindEventByID retrieves an event regardless of its active flag.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)
}
