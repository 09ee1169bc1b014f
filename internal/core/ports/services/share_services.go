package services

import (
	"context"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
)

// ShareSvcFacade manages the capability token of a calculation.
type ShareSvcFacade interface {
	// ExtendShare resets the token expiry, minting a token if none exists.
	ExtendShare(ctx context.Context, eventID, calculationID, userID string) (*domain.Calculation, error)

	// FetchShared returns a calculation to an unauthenticated token holder.
	FetchShared(ctx context.Context, eventID, calculationID, token string) (*domain.SharedCalculation, error)

	// ShareStatus reports the token state of a calculation at the current time.
	ShareStatus(calculation *domain.Calculation) domain.ShareStatus
}
