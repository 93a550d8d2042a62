package document

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrencyFormatter(t *testing.T) {
	t.Run("accepts es-MX MXN", func(t *testing.T) {
		f, err := NewCurrencyFormatter("es-MX", "MXN")
		require.NoError(t, err)
		assert.NotNil(t, f)
	})

	t.Run("rejects malformed locale", func(t *testing.T) {
		_, err := NewCurrencyFormatter("not a locale", "MXN")
		assert.Error(t, err)
	})

	t.Run("rejects unknown currency code", func(t *testing.T) {
		_, err := NewCurrencyFormatter("es-MX", "XXXX")
		assert.Error(t, err)
	})
}

func TestCurrencyFormatter_Format(t *testing.T) {
	f, err := NewCurrencyFormatter("es-MX", "MXN")
	require.NoError(t, err)

	tests := []struct {
		amount string
		want   string
	}{
		{"350", "$350.00"},
		{"350.5", "$350.50"},
		{"25000", "$25,000.00"},
		{"0", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestCurrencyFormatter_FallbackSymbol(t *testing.T) {
	f, err := NewCurrencyFormatter("en-US", "JPY")
	require.NoError(t, err)

	got := f.Format(decimal.NewFromInt(100))
	assert.Contains(t, got, "JPY")
}
