package pgsql

import (
	portsrepo "github.com/SscSPs/expense_settlement_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CalculationRepo:  newPgxCalculationRepository(dbPool),
		EventRepo:        newPgxEventRepository(dbPool),
		ParticipantRepo:  newPgxParticipantRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
	}
}
