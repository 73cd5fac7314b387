package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTradeDate(t *testing.T) {
	testCases := []struct {
		input string
		desc  string
	}{
		{"2024-11-02", "iso"},
		{"2024/11/02", "slashes"},
		{"02.11.2024", "dotted european"},
		{"11/02/2024", "us layout"},
		{"2024-11-02T15:04:05Z", "rfc3339"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			parsed, err := ParseTradeDate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, 2024, parsed.Year())
			assert.Equal(t, 11, int(parsed.Month()))
			assert.Equal(t, 2, parsed.Day())
		})
	}
}

func TestParseTradeDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "someday", "2024-13-40"} {
		_, err := ParseTradeDate(input)
		assert.Error(t, err, input)
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("2024/11/02")
	require.NoError(t, err)
	assert.Equal(t, "2024-11-02", got)

	got, err = Normalize("02.11.2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-11-02", got)

	_, err = Normalize("someday")
	assert.Error(t, err)
}
