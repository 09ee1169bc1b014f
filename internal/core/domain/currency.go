package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// CurrencyWithRates pairs a currency with the system rate table quoted against it.
type CurrencyWithRates struct {
	Currency
	Rates RateTable `json:"rates"`
}
