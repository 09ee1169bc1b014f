package settlement_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/SscSPs/expense_settlement_app/internal/core/settlement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		name   string
		direct domain.DebtLedger
		want   map[string]string
	}{
		{
			name: "nets mutual debts and drops self-loops",
			direct: domain.DebtLedger{
				"A_a": {"A_a": dec("10"), "B_b": dec("10")},
				"B_b": {"A_a": dec("5"), "B_b": dec("5")},
			},
			want: map[string]string{"A_a->B_b": "5.00"},
		},
		{
			name: "smaller side first in key order",
			direct: domain.DebtLedger{
				"A_a": {"B_b": dec("2.25")},
				"B_b": {"A_a": dec("7.75")},
			},
			want: map[string]string{"B_b->A_a": "5.50"},
		},
		{
			name: "equal debts cancel out",
			direct: domain.DebtLedger{
				"A_a": {"B_b": dec("4.20")},
				"B_b": {"A_a": dec("4.20")},
			},
			want: map[string]string{},
		},
		{
			name: "one-way debts pass through",
			direct: domain.DebtLedger{
				"A_a": {"B_b": dec("3"), "C_c": dec("1.10")},
			},
			want: map[string]string{"A_a->B_b": "3.00", "A_a->C_c": "1.10"},
		},
		{
			name: "zero cells are removed",
			direct: domain.DebtLedger{
				"A_a": {"B_b": dec("0")},
				"C_c": {"A_a": dec("2")},
			},
			want: map[string]string{"C_c->A_a": "2.00"},
		},
		{
			name: "three parties are only netted pairwise",
			direct: domain.DebtLedger{
				"A_a": {"B_b": dec("10")},
				"B_b": {"C_c": dec("10")},
				"C_c": {"A_a": dec("10")},
			},
			want: map[string]string{"A_a->B_b": "10.00", "B_b->C_c": "10.00", "C_c->A_a": "10.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cells(settlement.Simplify(tt.direct)))
		})
	}
}

func TestSimplify_LeavesInputUntouched(t *testing.T) {
	direct := domain.DebtLedger{
		"A_a": {"A_a": dec("1"), "B_b": dec("10")},
		"B_b": {"A_a": dec("4")},
	}
	before := cells(direct)

	_ = settlement.Simplify(direct)

	assert.Equal(t, before, cells(direct))
}

func randomLedger(r *rand.Rand, parties int) domain.DebtLedger {
	l := domain.NewDebtLedger()
	for i := 0; i < parties; i++ {
		for j := 0; j < parties; j++ {
			if r.Intn(3) == 0 {
				continue
			}
			cents := r.Intn(5000)
			if r.Intn(5) == 0 {
				cents = 1234 // force some ties
			}
			l.Set(fmt.Sprintf("P%d_%d", i, i), fmt.Sprintf("P%d_%d", j, j), decimal.New(int64(cents), -2))
		}
	}
	return l
}

func TestSimplify_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		direct := randomLedger(r, 6)
		simplified := settlement.Simplify(direct)

		// Determinism.
		assert.Equal(t, cells(simplified), cells(settlement.Simplify(direct)))

		keys := map[string]struct{}{}
		for c, row := range direct {
			keys[c] = struct{}{}
			for d := range row {
				keys[d] = struct{}{}
			}
		}
		for c := range keys {
			_, self := simplified.Amount(c, c)
			assert.False(t, self, "self-loop for %s survived", c)

			for d := range keys {
				if c == d {
					continue
				}
				cd, _ := simplified.Amount(c, d)
				dc, _ := simplified.Amount(d, c)
				assert.False(t, cd.IsNegative() || dc.IsNegative(), "negative cell %s/%s", c, d)
				assert.False(t, cd.IsPositive() && dc.IsPositive(), "both directions kept for %s/%s", c, d)

				rawCD, _ := direct.Amount(c, d)
				rawDC, _ := direct.Amount(d, c)
				want := rawCD.Sub(rawDC).Abs()
				assert.True(t, cd.Add(dc).Equal(want), "net %s/%s: got %s+%s want %s", c, d, cd, dc, want)
			}
		}
	}
}
