package handlers_test

import (
	"testing"

	"github.com/SscSPs/expense_settlement_app/internal/handlers"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedRequest struct {
	Currency string          `binding:"currency_code"`
	Amount   decimal.Decimal `binding:"decimal_gte0"`
	Rate     decimal.Decimal `binding:"decimal_gt0"`
}

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, handlers.RegisterValidators())
	require.NoError(t, handlers.RegisterValidators(), "repeat registration returns the first result")

	tests := []struct {
		name    string
		req     validatedRequest
		wantErr bool
	}{
		{"valid upper case", validatedRequest{"GBP", decimal.Zero, decimal.NewFromInt(1)}, false},
		{"valid lower case", validatedRequest{"gbp", decimal.NewFromInt(5), decimal.RequireFromString("0.5")}, false},
		{"currency too long", validatedRequest{"GBPX", decimal.Zero, decimal.NewFromInt(1)}, true},
		{"currency with digit", validatedRequest{"GB1", decimal.Zero, decimal.NewFromInt(1)}, true},
		{"negative amount", validatedRequest{"GBP", decimal.NewFromInt(-1), decimal.NewFromInt(1)}, true},
		{"zero rate", validatedRequest{"GBP", decimal.Zero, decimal.Zero}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
