package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CalculationRepo  CalculationRepositoryWithTx
	EventRepo        EventReader
	ParticipantRepo  ParticipantReader
	ExpenseRepo      ExpenseRepositoryFacade
	CurrencyRepo     CurrencyReader
	ExchangeRateRepo ExchangeRateRepositoryFacade
}
