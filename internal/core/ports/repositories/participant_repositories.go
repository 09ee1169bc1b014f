package repositories

import (
	"context"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
)

// ParticipantReader resolves participant ids against the flattened friends view.
type ParticipantReader interface {
	// FindParticipantsByIDs returns every requested participant keyed by id.
	// It fails with apperrors.ErrNotFound if any id is unknown.
	FindParticipantsByIDs(ctx context.Context, participantIDs []string) (map[string]domain.Participant, error)
}
