package settlement

import (
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Simplify nets every pair of mutual debts into a single directional amount
// and returns the result as a new ledger; direct is left untouched.
//
// Pairs are visited in ascending creditor then debtor order. For a pair with
// both directions present, the larger side is reduced by the smaller and the
// smaller is zeroed; equal sides both go to zero. Zero cells, self-loops and
// empty creditor rows are dropped from the output.
func Simplify(direct domain.DebtLedger) domain.DebtLedger {
	work := direct.Clone()

	for _, creditor := range work.Creditors() {
		for _, debtor := range work.Debtors(creditor) {
			if creditor == debtor {
				continue
			}
			owed, _ := work.Amount(creditor, debtor)
			back, ok := work.Amount(debtor, creditor)
			if !ok || !owed.IsPositive() || !back.IsPositive() {
				continue
			}
			if owed.GreaterThanOrEqual(back) {
				work.Set(creditor, debtor, owed.Sub(back).Round(LedgerPrecision))
				work.Set(debtor, creditor, decimal.Zero)
			} else {
				work.Set(debtor, creditor, back.Sub(owed).Round(LedgerPrecision))
				work.Set(creditor, debtor, decimal.Zero)
			}
		}
	}

	out := domain.NewDebtLedger()
	for _, creditor := range work.Creditors() {
		for _, debtor := range work.Debtors(creditor) {
			amt := work[creditor][debtor]
			if creditor == debtor || !amt.IsPositive() {
				continue
			}
			out.Set(creditor, debtor, amt)
		}
	}
	return out
}
