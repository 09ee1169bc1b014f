package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/SscSPs/expense_settlement_app/internal/models"
)

// ToModelCalculation converts a domain Calculation to a model Calculation,
// encoding the nested structures for their JSONB columns.
func ToModelCalculation(d domain.Calculation) (models.Calculation, error) {
	m := models.Calculation{
		CalculationID:    d.CalculationID,
		EventID:          d.EventID,
		BaseCurrency:     d.BaseCurrency,
		Purpose:          optionalString(d.Purpose),
		TotalAmount:      d.TotalAmount,
		ParticipantCount: d.ParticipantCount,
		ShareToken:       optionalString(d.ShareToken),
		ShareTokenExpiry: d.ShareTokenExpiry,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}

	fields := []struct {
		name string
		src  any
		dst  *[]byte
	}{
		{"options", d.Options, &m.Options},
		{"system_rates", nonNilRates(d.SystemRates), &m.SystemRates},
		{"calculation_rates", nonNilRates(d.CalculationRates), &m.CalculationRates},
		{"involved_currencies", nonNilStrings(d.InvolvedCurrencies), &m.InvolvedCurrencies},
		{"expenses_involved", d.ExpensesInvolved, &m.ExpensesInvolved},
		{"ledger_direct", nonNilLedger(d.LedgerDirect), &m.LedgerDirect},
		{"ledger_simplified", nonNilLedger(d.LedgerSimplified), &m.LedgerSimplified},
	}
	for _, f := range fields {
		raw, err := json.Marshal(f.src)
		if err != nil {
			return models.Calculation{}, fmt.Errorf("failed to encode %s: %w", f.name, err)
		}
		*f.dst = raw
	}
	return m, nil
}

// ToDomainCalculation converts a model Calculation to a domain Calculation.
func ToDomainCalculation(m models.Calculation) (domain.Calculation, error) {
	d := domain.Calculation{
		CalculationID:    m.CalculationID,
		EventID:          m.EventID,
		BaseCurrency:     m.BaseCurrency,
		Purpose:          derefString(m.Purpose),
		TotalAmount:      m.TotalAmount,
		ParticipantCount: m.ParticipantCount,
		ShareToken:       derefString(m.ShareToken),
		ShareTokenExpiry: m.ShareTokenExpiry,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}

	fields := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"options", m.Options, &d.Options},
		{"system_rates", m.SystemRates, &d.SystemRates},
		{"calculation_rates", m.CalculationRates, &d.CalculationRates},
		{"involved_currencies", m.InvolvedCurrencies, &d.InvolvedCurrencies},
		{"expenses_involved", m.ExpensesInvolved, &d.ExpensesInvolved},
		{"ledger_direct", m.LedgerDirect, &d.LedgerDirect},
		{"ledger_simplified", m.LedgerSimplified, &d.LedgerSimplified},
	}
	for _, f := range fields {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return domain.Calculation{}, fmt.Errorf("failed to decode %s of calculation %s: %w", f.name, m.CalculationID, err)
		}
	}
	return d, nil
}

func nonNilRates(t domain.RateTable) domain.RateTable {
	if t == nil {
		return domain.RateTable{}
	}
	return t
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilLedger(l domain.DebtLedger) domain.DebtLedger {
	if l == nil {
		return domain.DebtLedger{}
	}
	return l
}
