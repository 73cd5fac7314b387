package output

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber_FixedPrecision(t *testing.T) {
	testCases := []struct {
		value    any
		width    int
		places   int
		expected string
		desc     string
	}{
		{"1234.5", 0, 2, "1,234.50", "thousands separator"},
		{"1234567.891", 0, 2, "1,234,567.89", "two separators"},
		{"-1234.5", 0, 2, "-1,234.50", "negative with separator"},
		{"12.345", 0, 2, "12.35", "half rounds up"},
		{"-12.345", 0, 2, "-12.35", "half rounds away from zero"},
		{"1234.5", 0, 0, "1,235", "zero places drops the point"},
		{42, 0, 2, "42.00", "integer input"},
		{0.1, 0, 2, "0.10", "float input via string path"},
		{decimal.NewFromInt(7), 0, 2, "7.00", "decimal input"},
		{"12.35", 8, 2, "   12.35", "right justified"},
		{"0", 6, 2, "  0.00", "zero"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := FormatNumber(tc.value, tc.width, tc.places, false, false, false)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFormatNumber_HumanReadable(t *testing.T) {
	testCases := []struct {
		value    string
		places   int
		expected string
		desc     string
	}{
		{"22", 2, "22   ", "all-zero fraction blanks the point"},
		{"2.3", 2, "2.3 ", "single trailing zero"},
		{"2.31432", 5, "2.31432", "significant digits untouched"},
		{"143.0001", 4, "143.0001", "non-zero tail untouched"},
		{"1000", 2, "1,000   ", "separator kept"},
		{"-5", 2, "-5   ", "negative whole number"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := FormatNumber(tc.value, 0, tc.places, true, false, false)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFormatNumber_HumanReadableKeepsWidth(t *testing.T) {
	// trimming swaps zeros for spaces, it never changes the string length
	for _, value := range []string{"22", "2.3", "0.072", "19.90", "-3.10"} {
		plain, err := FormatNumber(value, 12, 3, false, false, false)
		require.NoError(t, err)
		human, err := FormatNumber(value, 12, 3, true, false, false)
		require.NoError(t, err)
		assert.Len(t, human, len(plain), "value %s", value)

		// the represented value must survive the trimming
		fromPlain, err := decimal.NewFromString(strings.TrimSpace(plain))
		require.NoError(t, err)
		fromHuman, err := decimal.NewFromString(strings.TrimRight(strings.TrimSpace(human), "."))
		require.NoError(t, err)
		assert.True(t, fromPlain.Equal(fromHuman), "value %s: %s != %s", value, fromPlain, fromHuman)
	}
}

func TestFormatNumber_HumanReadableSkippedAtZeroPlaces(t *testing.T) {
	got, err := FormatNumber("22", 0, 0, true, false, false)
	require.NoError(t, err)
	assert.Equal(t, "22", got)
}

func TestFormatNumber_RoundTrip(t *testing.T) {
	testCases := []struct {
		value  string
		places int
	}{
		{"0", 2},
		{"1234.5", 2},
		{"-12.345", 2},
		{"99999.99999", 4},
		{"0.00000001", 8},
		{"-1", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			got, err := FormatNumber(tc.value, 20, tc.places, false, false, false)
			require.NoError(t, err)

			parsed, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(got), ",", ""))
			require.NoError(t, err)

			want, err := decimal.NewFromString(tc.value)
			require.NoError(t, err)
			assert.True(t, parsed.Equal(want.Round(int32(tc.places))),
				"got %s, want %s", parsed, want.Round(int32(tc.places)))
		})
	}
}

func TestFormatNumber_Colorize(t *testing.T) {
	gain, err := FormatNumber("100.5", 8, 2, false, true, true)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[32m  100.50\x1b[0m", gain)

	loss, err := FormatNumber("-12.345", 8, 2, false, true, true)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31m  -12.35\x1b[0m", loss)

	// zero counts as a gain
	zero, err := FormatNumber("0", 6, 2, false, true, true)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(zero, "\x1b[32m"))

	// color disabled: no escapes at all
	plain, err := FormatNumber("-12.345", 8, 2, false, true, false)
	require.NoError(t, err)
	assert.Equal(t, "  -12.35", plain)
}

func TestFormatNumber_NonNumericInput(t *testing.T) {
	_, err := FormatNumber("not a number", 8, 2, false, false, false)
	require.Error(t, err)

	var formatErr *FormatError
	assert.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "not a number", formatErr.Value)

	_, err = FormatNumber(struct{}{}, 8, 2, false, false, false)
	assert.True(t, errors.As(err, &formatErr))
}
