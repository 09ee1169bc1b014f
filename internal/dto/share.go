package dto

import (
	"time"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
)

// ShareResponse carries the capability token for a calculation.
type ShareResponse struct {
	EventID          string    `json:"eventID"`
	CalculationID    string    `json:"calculationID"`
	ShareToken       string    `json:"shareToken"`
	ShareTokenExpiry time.Time `json:"shareTokenExpiry"`
}

// ToShareResponse converts a calculation with an issued token to ShareResponse DTO.
func ToShareResponse(c *domain.Calculation) ShareResponse {
	resp := ShareResponse{
		EventID:       c.EventID,
		CalculationID: c.CalculationID,
		ShareToken:    c.ShareToken,
	}
	if c.ShareTokenExpiry != nil {
		resp.ShareTokenExpiry = *c.ShareTokenExpiry
	}
	return resp
}

// SharedEventResponse is the public view of an event.
type SharedEventResponse struct {
	EventID         string `json:"eventID"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DefaultCurrency string `json:"defaultCurrency"`
}

// SharedCalculationResponse is returned to share-link holders.
type SharedCalculationResponse struct {
	Event       SharedEventResponse `json:"event"`
	Calculation CalculationResponse `json:"calculation"`
}

// ToSharedCalculationResponse converts a domain.SharedCalculation to SharedCalculationResponse DTO.
func ToSharedCalculationResponse(s *domain.SharedCalculation) SharedCalculationResponse {
	return SharedCalculationResponse{
		Event: SharedEventResponse{
			EventID:         s.Event.EventID,
			Name:            s.Event.Name,
			Description:     s.Event.Description,
			DefaultCurrency: s.Event.DefaultCurrency,
		},
		Calculation: ToCalculationResponse(&s.Calculation, domain.ShareActive),
	}
}
