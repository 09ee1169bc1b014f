package services

import (
	"context"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/SscSPs/expense_settlement_app/internal/dto"
)

// CalculationReaderSvc defines read operations on the calculations of an event
type CalculationReaderSvc interface {
	// ListCalculations returns the active calculations of an event, newest first.
	ListCalculations(ctx context.Context, eventID, userID string) ([]domain.Calculation, error)

	// GetCalculation returns one active calculation of an event.
	GetCalculation(ctx context.Context, eventID, calculationID, userID string) (*domain.Calculation, error)
}

// CalculationWriterSvc defines write operations on the calculations of an event
type CalculationWriterSvc interface {
	// CreateCalculation runs the settlement engine, persists the record and
	// marks the involved expenses as calculated in one transaction.
	CreateCalculation(ctx context.Context, eventID string, req dto.CreateCalculationRequest, userID string) (*domain.Calculation, error)

	// DeactivateCalculation soft-deletes a calculation.
	DeactivateCalculation(ctx context.Context, eventID, calculationID, userID string) error
}

// CalculationSvcFacade combines all calculation-related service interfaces
type CalculationSvcFacade interface {
	CalculationReaderSvc
	CalculationWriterSvc
}
