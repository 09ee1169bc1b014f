package settlement

import (
	"fmt"

	"github.com/SscSPs/expense_settlement_app/internal/apperrors"
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildResult is the direct ledger plus its summary statistics.
type BuildResult struct {
	Ledger           domain.DebtLedger
	TotalAmount      decimal.Decimal
	ParticipantCount int
}

// Build accumulates every payer->split-target amount, normalized into
// baseCurrency, into a direct ledger keyed by root participant.
//
// ParticipantCount is the number of distinct split-target participant ids.
// Payers who appear in no split are not counted.
//
// Cells and the total are rounded once, after all lines are accumulated.
// A split line that resolves to the payer's own root stays in the direct
// ledger as a self-loop.
func Build(expenses []domain.ExpenseShare, participants map[string]domain.Participant, baseCurrency string, rates domain.RateTable) (*BuildResult, error) {
	debtors := map[string]struct{}{}
	for _, exp := range expenses {
		for _, split := range exp.Splits {
			debtors[split.ParticipantID] = struct{}{}
		}
	}
	roots, err := NewResolver(participants).ResolveAll(ReferencedParticipantIDs(expenses))
	if err != nil {
		return nil, err
	}

	ledger := domain.NewDebtLedger()
	total := decimal.Zero

	for _, exp := range expenses {
		creditor := roots[exp.PaidBy]
		for _, split := range exp.Splits {
			if split.Amount.IsNegative() {
				return nil, fmt.Errorf("%w: expense '%s' has a negative split for participant '%s'", apperrors.ErrValidation, exp.ExpenseID, split.ParticipantID)
			}
			debtor := roots[split.ParticipantID]
			amt, err := Normalize(split.Amount, exp.CurrencyCode, baseCurrency, rates)
			if err != nil {
				return nil, fmt.Errorf("expense '%s': %w", exp.ExpenseID, err)
			}
			ledger.Add(creditor.Key, debtor.Key, amt)
			total = total.Add(amt)
		}
	}

	ledger.RoundCells(LedgerPrecision)

	return &BuildResult{
		Ledger:           ledger,
		TotalAmount:      total.Round(LedgerPrecision),
		ParticipantCount: len(debtors),
	}, nil
}
