package mapping

import (
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/SscSPs/expense_settlement_app/internal/models"
)

// ToDomainEvent converts a model Event to a domain Event
func ToDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:         m.EventID,
		OwnerUserID:     m.OwnerUserID,
		Name:            m.Name,
		Description:     derefString(m.Description),
		DefaultCurrency: m.DefaultCurrency,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
