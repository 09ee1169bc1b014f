package settlement_test

import (
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func root(id, name string) domain.Participant {
	return domain.Participant{ParticipantID: id, DisplayName: name, ParentID: id, ParentName: name}
}

func member(id, name string, parent domain.Participant, count int) domain.Participant {
	return domain.Participant{ParticipantID: id, DisplayName: name, ParentID: parent.ParticipantID, ParentName: parent.DisplayName, MemberCount: count}
}

func people(ps ...domain.Participant) map[string]domain.Participant {
	out := make(map[string]domain.Participant, len(ps))
	for _, p := range ps {
		out[p.ParticipantID] = p
	}
	return out
}

func split(id, amount string) domain.SplitLine {
	return domain.SplitLine{ParticipantID: id, Amount: dec(amount)}
}

// cells flattens a ledger to "creditor->debtor" => fixed 2dp string so
// assertions do not depend on decimal internals.
func cells(l domain.DebtLedger) map[string]string {
	out := map[string]string{}
	for creditor, row := range l {
		for debtor, amt := range row {
			out[creditor+"->"+debtor] = amt.StringFixed(2)
		}
	}
	return out
}
