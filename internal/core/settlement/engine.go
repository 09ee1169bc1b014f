package settlement

import (
	"fmt"
	"strings"

	"github.com/SscSPs/expense_settlement_app/internal/apperrors"
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Input is everything a settlement run needs, resolved ahead of time.
type Input struct {
	BaseCurrency string
	Rates        domain.RateTable
	Expenses     []domain.ExpenseShare
	Participants map[string]domain.Participant
}

// Result carries both ledger views and the summary statistics.
type Result struct {
	Direct             domain.DebtLedger
	Simplified         domain.DebtLedger
	TotalAmount        decimal.Decimal
	ParticipantCount   int
	InvolvedCurrencies []string
}

// Calculate runs the builder and the simplifier over in.
func Calculate(in Input) (*Result, error) {
	if in.BaseCurrency == "" {
		return nil, fmt.Errorf("%w: base currency is required", apperrors.ErrValidation)
	}
	if missing := MissingRates(in.Expenses, in.BaseCurrency, in.Rates); len(missing) > 0 {
		return nil, fmt.Errorf("%w: no rate against '%s' for %s", apperrors.ErrRateUnavailable, in.BaseCurrency, strings.Join(missing, ", "))
	}

	built, err := Build(in.Expenses, in.Participants, in.BaseCurrency, in.Rates)
	if err != nil {
		return nil, err
	}

	return &Result{
		Direct:             built.Ledger,
		Simplified:         Simplify(built.Ledger),
		TotalAmount:        built.TotalAmount,
		ParticipantCount:   built.ParticipantCount,
		InvolvedCurrencies: InvolvedCurrencies(in.Expenses),
	}, nil
}
