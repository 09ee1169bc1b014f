package services

import (
	"time"

	portsrepo "github.com/SscSPs/expense_settlement_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_settlement_app/internal/core/ports/services"
	"github.com/SscSPs/expense_settlement_app/internal/core/settlement"
	"github.com/SscSPs/expense_settlement_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// One token manager so creation and extension share the same window.
	tokens := settlement.NewShareTokenManager(cfg.ShareTokenExpiryDuration, time.Now)

	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, repos.CurrencyRepo)
	container.Calculation = NewCalculationService(
		repos.CalculationRepo,
		repos.EventRepo,
		repos.ParticipantRepo,
		repos.ExpenseRepo,
		container.ExchangeRate,
		tokens,
	)
	container.Share = NewShareService(repos.CalculationRepo, repos.EventRepo, tokens)

	return container
}
