package settlement

import (
	"fmt"
	"sort"

	"github.com/SscSPs/expense_settlement_app/internal/apperrors"
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
)

// Root identifies the participant that ultimately bears a debt.
type Root struct {
	Key  string
	ID   string
	Name string
}

// Resolver rolls participants up to their root for debt attribution.
type Resolver struct {
	known map[string]domain.Participant
}

// NewResolver builds a resolver over the known participant set.
func NewResolver(participants map[string]domain.Participant) *Resolver {
	return &Resolver{known: participants}
}

// Resolve returns the root of participantID. An id outside the known set is
// an ErrNotFound; no default root is ever invented.
func (r *Resolver) Resolve(participantID string) (Root, error) {
	p, ok := r.known[participantID]
	if !ok {
		return Root{}, fmt.Errorf("%w: participant '%s' cannot be resolved", apperrors.ErrNotFound, participantID)
	}
	return Root{Key: p.RootKey(), ID: p.RootID(), Name: p.RootName()}, nil
}

// ResolveAll resolves every id, failing on the first unknown one.
func (r *Resolver) ResolveAll(ids []string) (map[string]Root, error) {
	roots := make(map[string]Root, len(ids))
	for _, id := range ids {
		root, err := r.Resolve(id)
		if err != nil {
			return nil, err
		}
		roots[id] = root
	}
	return roots, nil
}

// ReferencedParticipantIDs returns every payer and split-target id across the
// expenses, deduplicated and sorted.
func ReferencedParticipantIDs(expenses []domain.ExpenseShare) []string {
	seen := map[string]struct{}{}
	for _, exp := range expenses {
		seen[exp.PaidBy] = struct{}{}
		for _, split := range exp.Splits {
			seen[split.ParticipantID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
