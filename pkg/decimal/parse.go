// Package decimal provides exact coercion of loosely typed numeric input
// into shopspring decimals. Financial values must never pass through binary
// floating point arithmetic, so every conversion routes through a string
// representation.
package decimal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// From coerces v into a decimal. Supported inputs are decimals, integers,
// numeric strings and float64 (converted via its shortest exact string
// form, not via NewFromFloat's binary path).
func From(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case string:
		return FromString(n)
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case float64:
		return FromString(strconv.FormatFloat(n, 'f', -1, 64))
	case float32:
		return FromString(strconv.FormatFloat(float64(n), 'f', -1, 32))
	default:
		return decimal.Decimal{}, fmt.Errorf("unsupported numeric type %T", v)
	}
}

// FromString parses a numeric string, tolerating surrounding whitespace.
func FromString(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("not a number: %q", s)
	}
	return d, nil
}
