package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "₦0.00"},
		{"whole", "500", "₦500.00"},
		{"grouped", "1234567.5", "₦1,234,567.50"},
		{"two decimals kept", "99.99", "₦99.99"},
		{"rounds half up", "10.005", "₦10.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatNaira(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.345"), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.4"), 0))
}
