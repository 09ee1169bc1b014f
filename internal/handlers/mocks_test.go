package handlers_test

import (
	"context"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_settlement_app/internal/core/ports/services"
	"github.com/SscSPs/expense_settlement_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CalculationService ---
type MockCalculationService struct {
	mock.Mock
}

func (m *MockCalculationService) ListCalculations(ctx context.Context, eventID, userID string) ([]domain.Calculation, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Calculation), args.Error(1)
}

func (m *MockCalculationService) GetCalculation(ctx context.Context, eventID, calculationID, userID string) (*domain.Calculation, error) {
	args := m.Called(ctx, eventID, calculationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calculation), args.Error(1)
}

func (m *MockCalculationService) CreateCalculation(ctx context.Context, eventID string, req dto.CreateCalculationRequest, userID string) (*domain.Calculation, error) {
	args := m.Called(ctx, eventID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calculation), args.Error(1)
}

func (m *MockCalculationService) DeactivateCalculation(ctx context.Context, eventID, calculationID, userID string) error {
	args := m.Called(ctx, eventID, calculationID, userID)
	return args.Error(0)
}

var _ portssvc.CalculationSvcFacade = (*MockCalculationService)(nil)

// --- Mock ShareService ---
type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) ExtendShare(ctx context.Context, eventID, calculationID, userID string) (*domain.Calculation, error) {
	args := m.Called(ctx, eventID, calculationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calculation), args.Error(1)
}

func (m *MockShareService) FetchShared(ctx context.Context, eventID, calculationID, token string) (*domain.SharedCalculation, error) {
	args := m.Called(ctx, eventID, calculationID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SharedCalculation), args.Error(1)
}

func (m *MockShareService) ShareStatus(calculation *domain.Calculation) domain.ShareStatus {
	args := m.Called(calculation)
	return args.Get(0).(domain.ShareStatus)
}

var _ portssvc.ShareSvcFacade = (*MockShareService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetRateTable(ctx context.Context, baseCurrencyCode string) (domain.RateTable, error) {
	args := m.Called(ctx, baseCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateTable), args.Error(1)
}

func (m *MockExchangeRateService) GetMasterData(ctx context.Context) ([]domain.CurrencyWithRates, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyWithRates), args.Error(1)
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)
