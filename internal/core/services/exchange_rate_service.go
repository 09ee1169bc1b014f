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
	"github.com/SscSPs/expense_settlement_app/internal/dto"
	"github.com/google/uuid"
)

// exchangeRateService provides business logic for exchange rates.
type exchangeRateService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	now          func() time.Time
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyRepo portsrepo.CurrencyReader) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
		now:          time.Now,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate handles the creation of a new exchange rate.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	fromCode := strings.ToUpper(req.FromCurrencyCode)
	toCode := strings.ToUpper(req.ToCurrencyCode)

	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if fromCode == toCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	if err := s.requireCurrency(ctx, "from", fromCode); err != nil {
		return nil, err
	}
	if err := s.requireCurrency(ctx, "to", toCode); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             req.Rate,
		DateEffective:    req.DateEffective.UTC().Truncate(24 * time.Hour),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("from", fromCode), slog.String("to", toCode))
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	return &rate, nil
}

func (s *exchangeRateService) requireCurrency(ctx context.Context, side, code string) error {
	_, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: '%s' currency code '%s' not found", apperrors.ErrValidation, side, code)
	}
	return fmt.Errorf("failed to validate '%s' currency '%s': %w", side, code, err)
}

// GetRateTable returns the latest system rates quoted against baseCurrencyCode.
// A base with no rates yields an empty table; missing currencies are detected
// by the settlement engine.
func (s *exchangeRateService) GetRateTable(ctx context.Context, baseCurrencyCode string) (domain.RateTable, error) {
	base := strings.ToUpper(baseCurrencyCode)
	if len(base) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	table, err := s.rateRepo.FindRateTable(ctx, base)
	if err != nil {
		s.LogError(ctx, err, "Failed to load rate table", slog.String("base", base))
		return nil, fmt.Errorf("failed to get rate table in service: %w", err)
	}
	if table == nil {
		table = domain.RateTable{}
	}
	return table, nil
}

// GetMasterData lists the active currencies, each with its own rate table.
func (s *exchangeRateService) GetMasterData(ctx context.Context) ([]domain.CurrencyWithRates, error) {
	currencies, err := s.currencyRepo.ListActiveCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	result := make([]domain.CurrencyWithRates, 0, len(currencies))
	for _, currency := range currencies {
		table, err := s.GetRateTable(ctx, currency.CurrencyCode)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.CurrencyWithRates{Currency: currency, Rates: table})
	}
	return result, nil
}
