package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_settlement_app/internal/apperrors"
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_settlement_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_settlement_app/internal/core/ports/services"
	"github.com/SscSPs/expense_settlement_app/internal/core/settlement"
	"github.com/SscSPs/expense_settlement_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// calculationService implements the CalculationSvcFacade interface
type calculationService struct {
	BaseService
	calculationRepo portsrepo.CalculationRepositoryWithTx
	participantRepo portsrepo.ParticipantReader
	expenseRepo     portsrepo.ExpenseRepositoryFacade
	rateService     portssvc.ExchangeRateReaderSvc
	tokens          *settlement.ShareTokenManager
	now             func() time.Time
	newID           func() string
}

// CalculationServiceOption is a functional option for configuring the calculation service
type CalculationServiceOption func(*calculationService)

// WithCalculationClock overrides the clock used for audit timestamps.
func WithCalculationClock(now func() time.Time) CalculationServiceOption {
	return func(s *calculationService) {
		s.now = now
	}
}

// WithCalculationIDGenerator overrides how calculation ids are minted.
func WithCalculationIDGenerator(newID func() string) CalculationServiceOption {
	return func(s *calculationService) {
		s.newID = newID
	}
}

// NewCalculationService creates a new calculation service with the provided options
func NewCalculationService(
	calculationRepo portsrepo.CalculationRepositoryWithTx,
	eventRepo portsrepo.EventReader,
	participantRepo portsrepo.ParticipantReader,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	rateService portssvc.ExchangeRateReaderSvc,
	tokens *settlement.ShareTokenManager,
	options ...CalculationServiceOption,
) portssvc.CalculationSvcFacade {
	svc := &calculationService{
		BaseService:     BaseService{EventRepo: eventRepo},
		calculationRepo: calculationRepo,
		participantRepo: participantRepo,
		expenseRepo:     expenseRepo,
		rateService:     rateService,
		tokens:          tokens,
		now:             time.Now,
		newID:           uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CalculationSvcFacade = (*calculationService)(nil)

func (s *calculationService) CreateCalculation(ctx context.Context, eventID string, req dto.CreateCalculationRequest, userID string) (*domain.Calculation, error) {
	baseCurrency := strings.ToUpper(req.BaseCurrency)
	if len(baseCurrency) != 3 {
		return nil, fmt.Errorf("%w: base currency must be a 3 letter code", apperrors.ErrValidation)
	}
	if len(req.ExpensesInvolved) == 0 {
		return nil, fmt.Errorf("%w: at least one expense is required", apperrors.ErrValidation)
	}

	if _, err := s.AuthorizeEventOwner(ctx, eventID, userID); err != nil {
		return nil, err
	}

	expenses := req.ToExpenseShares()
	if err := s.checkExpenses(ctx, eventID, expenses); err != nil {
		s.LogWarn(ctx, err, "Expenses rejected for calculation", slog.String("event_id", eventID))
		return nil, err
	}

	systemRates, err := s.rateService.GetRateTable(ctx, baseCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rate table for '%s': %w", baseCurrency, err)
	}
	rates := systemRates
	if len(req.ExchangeRates) > 0 {
		if rates, err = callerRateTable(req.ExchangeRates); err != nil {
			return nil, err
		}
	}

	participants, err := s.participantRepo.FindParticipantsByIDs(ctx, settlement.ReferencedParticipantIDs(expenses))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve participants", slog.String("event_id", eventID))
		}
		return nil, err
	}

	result, err := settlement.Calculate(settlement.Input{
		BaseCurrency: baseCurrency,
		Rates:        rates,
		Expenses:     expenses,
		Participants: participants,
	})
	if err != nil {
		s.LogWarn(ctx, err, "Settlement calculation failed", slog.String("event_id", eventID))
		return nil, err
	}

	now := s.now().UTC()
	calculation := domain.Calculation{
		CalculationID:      s.newID(),
		EventID:            eventID,
		BaseCurrency:       baseCurrency,
		Purpose:            req.Purpose,
		Options:            domain.CalculationOptions(req.Options),
		SystemRates:        systemRates,
		CalculationRates:   rates,
		InvolvedCurrencies: result.InvolvedCurrencies,
		ExpensesInvolved:   expenses,
		LedgerDirect:       result.Direct,
		LedgerSimplified:   result.Simplified,
		TotalAmount:        result.TotalAmount,
		ParticipantCount:   result.ParticipantCount,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.tokens.Issue(&calculation); err != nil {
		return nil, fmt.Errorf("failed to issue share token: %w", err)
	}

	if err := s.persistCalculation(ctx, calculation); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Calculation created",
		slog.String("calculation_id", calculation.CalculationID),
		slog.String("event_id", eventID),
		slog.Int("expenses", len(expenses)))
	return &calculation, nil
}

// persistCalculation saves the record and marks its expenses calculated in one
// transaction. Nothing is visible unless both writes commit.
func (s *calculationService) persistCalculation(ctx context.Context, calculation domain.Calculation) error {
	tx, err := s.calculationRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin calculation transaction")
		return fmt.Errorf("%w: %w", apperrors.ErrPersistence, err)
	}

	fail := func(step string, cause error) error {
		s.LogError(ctx, cause, "Calculation write failed, rolling back",
			slog.String("step", step),
			slog.String("calculation_id", calculation.CalculationID))
		if rbErr := s.calculationRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back calculation transaction")
		}
		return fmt.Errorf("%w: %s: %w", apperrors.ErrPersistence, step, cause)
	}

	if err := s.calculationRepo.SaveCalculationInTx(ctx, tx, calculation); err != nil {
		return fail("save calculation", err)
	}
	if err := s.expenseRepo.MarkExpensesCalculatedInTx(ctx, tx, calculation.ExpenseIDs(), calculation.CreatedBy, calculation.CreatedAt); err != nil {
		return fail("mark expenses calculated", err)
	}
	if err := s.calculationRepo.Commit(ctx, tx); err != nil {
		return fail("commit", err)
	}
	return nil
}

// checkExpenses verifies every submitted expense is unique, exists, is active,
// belongs to the event and has not been part of an earlier calculation.
func (s *calculationService) checkExpenses(ctx context.Context, eventID string, expenses []domain.ExpenseShare) error {
	ids := make([]string, 0, len(expenses))
	seen := make(map[string]struct{}, len(expenses))
	for _, e := range expenses {
		if _, dup := seen[e.ExpenseID]; dup {
			return fmt.Errorf("%w: expense '%s' submitted more than once", apperrors.ErrValidation, e.ExpenseID)
		}
		seen[e.ExpenseID] = struct{}{}
		ids = append(ids, e.ExpenseID)
	}

	stored, err := s.expenseRepo.FindExpensesByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}
	byID := make(map[string]domain.Expense, len(stored))
	for _, e := range stored {
		byID[e.ExpenseID] = e
	}

	for _, id := range ids {
		e, ok := byID[id]
		if !ok || !e.IsActive || e.EventID != eventID {
			return fmt.Errorf("%w: expense '%s' in event '%s'", apperrors.ErrNotFound, id, eventID)
		}
		if e.IsCalculated {
			return fmt.Errorf("%w: expense '%s' has already been calculated", apperrors.ErrValidation, id)
		}
	}
	return nil
}

func callerRateTable(rates map[string]decimal.Decimal) (domain.RateTable, error) {
	table := make(domain.RateTable, len(rates))
	for code, rate := range rates {
		if !rate.IsPositive() {
			return nil, fmt.Errorf("%w: exchange rate for '%s' must be positive", apperrors.ErrValidation, code)
		}
		table[strings.ToUpper(code)] = rate
	}
	return table, nil
}

func (s *calculationService) ListCalculations(ctx context.Context, eventID, userID string) ([]domain.Calculation, error) {
	if _, err := s.AuthorizeEventOwner(ctx, eventID, userID); err != nil {
		return nil, err
	}
	calculations, err := s.calculationRepo.ListCalculationsByEvent(ctx, eventID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list calculations", slog.String("event_id", eventID))
		return nil, err
	}
	return calculations, nil
}

func (s *calculationService) GetCalculation(ctx context.Context, eventID, calculationID, userID string) (*domain.Calculation, error) {
	if _, err := s.AuthorizeEventOwner(ctx, eventID, userID); err != nil {
		return nil, err
	}
	return findEventCalculation(ctx, s.calculationRepo, eventID, calculationID)
}

func (s *calculationService) DeactivateCalculation(ctx context.Context, eventID, calculationID, userID string) error {
	if _, err := s.AuthorizeEventOwner(ctx, eventID, userID); err != nil {
		return err
	}
	if _, err := findEventCalculation(ctx, s.calculationRepo, eventID, calculationID); err != nil {
		return err
	}
	if err := s.calculationRepo.DeactivateCalculation(ctx, calculationID, userID, s.now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate calculation", slog.String("calculation_id", calculationID))
		return err
	}
	s.LogInfo(ctx, "Calculation deactivated", slog.String("calculation_id", calculationID))
	return nil
}

// findEventCalculation loads an active calculation and checks it belongs to eventID.
// A calculation of another event is reported as not found.
func findEventCalculation(ctx context.Context, repo portsrepo.CalculationReader, eventID, calculationID string) (*domain.Calculation, error) {
	calculation, err := repo.FindCalculationByID(ctx, calculationID)
	if err != nil {
		return nil, err
	}
	if !calculation.IsActive || calculation.EventID != eventID {
		return nil, fmt.Errorf("%w: calculation '%s' in event '%s'", apperrors.ErrNotFound, calculationID, eventID)
	}
	return calculation, nil
}
