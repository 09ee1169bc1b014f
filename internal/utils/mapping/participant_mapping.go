package mapping

import (
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/SscSPs/expense_settlement_app/internal/models"
)

// ToDomainParticipant converts a flattened friend row to a domain Participant.
// Root rows carry themselves as parent.
func ToDomainParticipant(m models.FlattenedFriend) domain.Participant {
	return domain.Participant{
		ParticipantID: m.ParticipantID,
		DisplayName:   m.DisplayName,
		IsSelf:        m.IsSelf,
		ParentID:      m.ParentID,
		ParentName:    m.ParentName,
		MemberCount:   m.MemberCount,
	}
}
