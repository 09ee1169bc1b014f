package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DebtLedger maps creditor key -> debtor key -> amount owed, in base currency.
// Keys are root participant keys. Iteration helpers return keys in ascending
// order so every consumer walks the ledger deterministically.
type DebtLedger map[string]map[string]decimal.Decimal

// NewDebtLedger returns an empty ledger.
func NewDebtLedger() DebtLedger {
	return DebtLedger{}
}

// Add accumulates amount onto the creditor->debtor cell.
func (l DebtLedger) Add(creditor, debtor string, amount decimal.Decimal) {
	row, ok := l[creditor]
	if !ok {
		row = map[string]decimal.Decimal{}
		l[creditor] = row
	}
	row[debtor] = row[debtor].Add(amount)
}

// Set overwrites the creditor->debtor cell.
func (l DebtLedger) Set(creditor, debtor string, amount decimal.Decimal) {
	row, ok := l[creditor]
	if !ok {
		row = map[string]decimal.Decimal{}
		l[creditor] = row
	}
	row[debtor] = amount
}

// Amount returns the creditor->debtor cell and whether it exists.
func (l DebtLedger) Amount(creditor, debtor string) (decimal.Decimal, bool) {
	row, ok := l[creditor]
	if !ok {
		return decimal.Zero, false
	}
	amt, ok := row[debtor]
	return amt, ok
}

// Creditors returns the creditor keys in ascending order.
func (l DebtLedger) Creditors() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Debtors returns the debtor keys of creditor in ascending order.
func (l DebtLedger) Debtors(creditor string) []string {
	row := l[creditor]
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy.
func (l DebtLedger) Clone() DebtLedger {
	out := make(DebtLedger, len(l))
	for creditor, row := range l {
		copied := make(map[string]decimal.Decimal, len(row))
		for debtor, amt := range row {
			copied[debtor] = amt
		}
		out[creditor] = copied
	}
	return out
}

// Sum adds up every cell.
func (l DebtLedger) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, row := range l {
		for _, amt := range row {
			total = total.Add(amt)
		}
	}
	return total
}

// RoundCells rounds every cell to places decimals, half away from zero.
func (l DebtLedger) RoundCells(places int32) {
	for _, row := range l {
		for debtor, amt := range row {
			row[debtor] = amt.Round(places)
		}
	}
}
