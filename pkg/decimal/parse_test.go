package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	testCases := []struct {
		input    any
		expected string
		desc     string
	}{
		{decimal.NewFromInt(7), "7", "decimal passthrough"},
		{"1234.56", "1234.56", "numeric string"},
		{"  42 ", "42", "padded string"},
		{42, "42", "int"},
		{int64(-9), "-9", "int64"},
		{0.1, "0.1", "float64 via shortest string form"},
		{float32(2.5), "2.5", "float32"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := From(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got.String())
		})
	}
}

func TestFrom_FloatStaysExact(t *testing.T) {
	// 0.1 has no finite binary representation; the string path must not
	// leak the float error into the decimal
	d, err := From(0.1)
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.New(1, -1)))
}

func TestFrom_Unsupported(t *testing.T) {
	_, err := From(struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported numeric type")

	_, err = From("12.3.4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}
