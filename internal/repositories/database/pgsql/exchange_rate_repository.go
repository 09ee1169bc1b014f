package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/expense_settlement_app/internal/apperrors"
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_settlement_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_settlement_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxExchangeRateRepository implements the exchange rate ports using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a rate, or updates the rate already effective on the same date.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	fromCurrency := strings.ToUpper(rate.FromCurrencyCode)
	toCurrency := strings.ToUpper(rate.ToCurrencyCode)

	if fromCurrency == toCurrency {
		return apperrors.NewValidationError("from and to currencies cannot be the same")
	}

	modelRate := mapping.ToModelExchangeRate(rate)
	modelRate.FromCurrencyCode = fromCurrency
	modelRate.ToCurrencyCode = toCurrency

	query := `
		INSERT INTO exchange_rates (
			exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (from_currency_code, to_currency_code, date_effective) DO UPDATE SET
			rate = EXCLUDED.rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelRate.ExchangeRateID, modelRate.FromCurrencyCode, modelRate.ToCurrencyCode,
		modelRate.Rate, modelRate.DateEffective, modelRate.CreatedAt,
		modelRate.CreatedBy, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: exchange rate %s", apperrors.ErrDuplicate, modelRate.ExchangeRateID)
		}
		return apperrors.NewAppError(500, "failed to save exchange rate", err)
	}
	return nil
}

// FindRateTable returns the latest rate of every currency quoted against
// baseCurrencyCode. A direct base->X quote wins over an inverted X->base one.
func (r *PgxExchangeRateRepository) FindRateTable(ctx context.Context, baseCurrencyCode string) (domain.RateTable, error) {
	base := strings.ToUpper(baseCurrencyCode)

	query := `
		WITH direct AS (
			SELECT DISTINCT ON (to_currency_code) to_currency_code AS code, rate
			FROM exchange_rates
			WHERE from_currency_code = $1
			ORDER BY to_currency_code, date_effective DESC
		), inverse AS (
			SELECT DISTINCT ON (from_currency_code) from_currency_code AS code, rate
			FROM exchange_rates
			WHERE to_currency_code = $1
			ORDER BY from_currency_code, date_effective DESC
		)
		SELECT code, rate, TRUE FROM direct
		UNION ALL
		SELECT code, rate, FALSE FROM inverse;
	`
	rows, err := r.Pool.Query(ctx, query, base)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load rate table", err)
	}

	type quote struct {
		code   string
		rate   decimal.Decimal
		direct bool
	}
	quotes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (quote, error) {
		var q quote
		err := row.Scan(&q.code, &q.rate, &q.direct)
		return q, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan rate table", err)
	}

	return buildRateTable(quotes, func(q quote) (string, decimal.Decimal, bool) {
		return q.code, q.rate, q.direct
	}), nil
}

// buildRateTable folds direct and inverse quotes into a table. Inverse quotes
// are used as 1/rate only when no direct quote exists; zero rates are skipped.
func buildRateTable[T any](quotes []T, unpack func(T) (string, decimal.Decimal, bool)) domain.RateTable {
	table := domain.RateTable{}
	inverse := map[string]decimal.Decimal{}
	for _, q := range quotes {
		code, rate, direct := unpack(q)
		if !rate.IsPositive() {
			continue
		}
		if direct {
			table[code] = rate
		} else {
			inverse[code] = rate
		}
	}
	for code, rate := range inverse {
		if _, ok := table[code]; !ok {
			table[code] = decimal.NewFromInt(1).Div(rate)
		}
	}
	return table
}
