package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_settlement_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_settlement_app/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a live transaction; repositories are mocked so none of
// its methods are ever called.
type fakeTx struct {
	pgx.Tx
}

// --- Mock CalculationRepository ---
type MockCalculationRepository struct {
	mock.Mock
}

func (m *MockCalculationRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockCalculationRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockCalculationRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockCalculationRepository) FindCalculationByID(ctx context.Context, calculationID string) (*domain.Calculation, error) {
	args := m.Called(ctx, calculationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calculation), args.Error(1)
}

func (m *MockCalculationRepository) ListCalculationsByEvent(ctx context.Context, eventID string) ([]domain.Calculation, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Calculation), args.Error(1)
}

func (m *MockCalculationRepository) SaveCalculationInTx(ctx context.Context, tx pgx.Tx, calculation domain.Calculation) error {
	return m.Called(ctx, tx, calculation).Error(0)
}

func (m *MockCalculationRepository) UpdateShareToken(ctx context.Context, calculationID, token string, expiry time.Time, userID string, at time.Time) error {
	return m.Called(ctx, calculationID, token, expiry, userID, at).Error(0)
}

func (m *MockCalculationRepository) DeactivateCalculation(ctx context.Context, calculationID, userID string, at time.Time) error {
	return m.Called(ctx, calculationID, userID, at).Error(0)
}

var _ portsrepo.CalculationRepositoryWithTx = (*MockCalculationRepository)(nil)

// --- Mock EventRepository ---
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

// --- Mock ParticipantRepository ---
type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) FindParticipantsByIDs(ctx context.Context, participantIDs []string) (map[string]domain.Participant, error) {
	args := m.Called(ctx, participantIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Participant), args.Error(1)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpensesByIDs(ctx context.Context, expenseIDs []string) ([]domain.Expense, error) {
	args := m.Called(ctx, expenseIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) MarkExpensesCalculatedInTx(ctx context.Context, tx pgx.Tx, expenseIDs []string, userID string, at time.Time) error {
	return m.Called(ctx, tx, expenseIDs, userID, at).Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindRateTable(ctx context.Context, baseCurrencyCode string) (domain.RateTable, error) {
	args := m.Called(ctx, baseCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateTable), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	return m.Called(ctx, rate).Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock ExchangeRateService (reader side) ---
type MockRateTableService struct {
	mock.Mock
}

func (m *MockRateTableService) GetRateTable(ctx context.Context, baseCurrencyCode string) (domain.RateTable, error) {
	args := m.Called(ctx, baseCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateTable), args.Error(1)
}

func (m *MockRateTableService) GetMasterData(ctx context.Context) ([]domain.CurrencyWithRates, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyWithRates), args.Error(1)
}

var (
	_ portsrepo.ExpenseRepositoryFacade      = (*MockExpenseRepository)(nil)
	_ portsrepo.ExchangeRateRepositoryFacade = (*MockExchangeRateRepository)(nil)
	_ portsrepo.CurrencyReader               = (*MockCurrencyRepository)(nil)
	_ portsrepo.ParticipantReader            = (*MockParticipantRepository)(nil)
	_ portsrepo.EventReader                  = (*MockEventRepository)(nil)
	_ portssvc.ExchangeRateReaderSvc         = (*MockRateTableService)(nil)
)
