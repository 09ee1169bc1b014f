package pgsql

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/expense_settlement_app/internal/apperrors"
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_settlement_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_settlement_app/internal/models"
	"github.com/SscSPs/expense_settlement_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxParticipantRepository resolves participants through vw_flattened_friends.
type PgxParticipantRepository struct {
	BaseRepository
}

func newPgxParticipantRepository(pool *pgxpool.Pool) *PgxParticipantRepository {
	return &PgxParticipantRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ParticipantReader = (*PgxParticipantRepository)(nil)

// FindParticipantsByIDs returns every requested participant keyed by id.
func (r *PgxParticipantRepository) FindParticipantsByIDs(ctx context.Context, participantIDs []string) (map[string]domain.Participant, error) {
	result := make(map[string]domain.Participant, len(participantIDs))
	if len(participantIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT participant_id, display_name, is_self, parent_id, parent_name, member_count
		FROM vw_flattened_friends
		WHERE participant_id = ANY($1);
	`
	rows, err := r.Pool.Query(ctx, query, participantIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	friends, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FlattenedFriend, error) {
		var f models.FlattenedFriend
		err := row.Scan(&f.ParticipantID, &f.DisplayName, &f.IsSelf, &f.ParentID, &f.ParentName, &f.MemberCount)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan participants: %w", err)
	}

	for _, f := range friends {
		result[f.ParticipantID] = mapping.ToDomainParticipant(f)
	}

	var missing []string
	for _, id := range participantIDs {
		if _, ok := result[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, apperrors.NewNotFoundError("unknown participant(s): " + strings.Join(missing, ", "))
	}
	return result, nil
}
