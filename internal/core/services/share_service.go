package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_settlement_app/internal/apperrors"
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_settlement_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_settlement_app/internal/core/ports/services"
	"github.com/SscSPs/expense_settlement_app/internal/core/settlement"
)

// shareService implements the ShareSvcFacade interface
type shareService struct {
	BaseService
	calculationRepo portsrepo.CalculationRepositoryFacade
	tokens          *settlement.ShareTokenManager
	now             func() time.Time
}

// ShareServiceOption is a functional option for configuring the share service
type ShareServiceOption func(*shareService)

// WithShareClock overrides the clock used for audit timestamps.
func WithShareClock(now func() time.Time) ShareServiceOption {
	return func(s *shareService) {
		s.now = now
	}
}

// NewShareService creates a new share service
func NewShareService(
	calculationRepo portsrepo.CalculationRepositoryFacade,
	eventRepo portsrepo.EventReader,
	tokens *settlement.ShareTokenManager,
	options ...ShareServiceOption,
) portssvc.ShareSvcFacade {
	svc := &shareService{
		BaseService:     BaseService{EventRepo: eventRepo},
		calculationRepo: calculationRepo,
		tokens:          tokens,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ShareSvcFacade = (*shareService)(nil)

func (s *shareService) ExtendShare(ctx context.Context, eventID, calculationID, userID string) (*domain.Calculation, error) {
	if _, err := s.AuthorizeEventOwner(ctx, eventID, userID); err != nil {
		return nil, err
	}
	calculation, err := findEventCalculation(ctx, s.calculationRepo, eventID, calculationID)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Extend(calculation); err != nil {
		return nil, fmt.Errorf("failed to extend share token: %w", err)
	}

	now := s.now().UTC()
	err = s.calculationRepo.UpdateShareToken(ctx, calculationID, calculation.ShareToken, *calculation.ShareTokenExpiry, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to store share token", slog.String("calculation_id", calculationID))
		return nil, err
	}
	calculation.LastUpdatedAt = now
	calculation.LastUpdatedBy = userID

	s.LogInfo(ctx, "Share token extended",
		slog.String("calculation_id", calculationID),
		slog.Time("expires_at", *calculation.ShareTokenExpiry))
	return calculation, nil
}

// FetchShared returns NotFound for missing or inactive records, InvalidShareToken
// for a token mismatch and ShareExpired once the expiry has been reached.
func (s *shareService) FetchShared(ctx context.Context, eventID, calculationID, token string) (*domain.SharedCalculation, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", apperrors.ErrInvalidShareToken)
	}

	event, err := s.FindActiveEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	calculation, err := findEventCalculation(ctx, s.calculationRepo, eventID, calculationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load shared calculation", slog.String("calculation_id", calculationID))
		}
		return nil, err
	}

	if err := s.tokens.Verify(calculation, token); err != nil {
		s.LogWarn(ctx, err, "Share access denied", slog.String("calculation_id", calculationID))
		return nil, err
	}

	return &domain.SharedCalculation{Event: *event, Calculation: *calculation}, nil
}

func (s *shareService) ShareStatus(calculation *domain.Calculation) domain.ShareStatus {
	return s.tokens.Status(calculation)
}
