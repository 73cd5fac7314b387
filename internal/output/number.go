package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	pdecimal "github.com/coinfolio/portfolio-tracker/pkg/decimal"
)

// FormatError reports formatter input that cannot be read as a number.
type FormatError struct {
	Value any
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot format %v as a number: %v", e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// gain/loss colors are enabled explicitly so rendering stays deterministic
// regardless of whether stdout is a terminal; the colorEnabled parameter is
// the only switch.
var (
	gainColor = color.New(color.FgGreen)
	lossColor = color.New(color.FgRed)
)

func init() {
	gainColor.EnableColor()
	lossColor.EnableColor()
}

// FormatNumber renders value right-justified to totalWidth with thousands
// separators and exactly places decimal digits. Rounding is half away from
// zero. With humanReadable set, insignificant trailing zeros in the fraction
// are swapped for spaces (the decimal point too, once the whole fraction
// goes), keeping the rendered width unchanged. With colorize and
// colorEnabled set, the padded string is wrapped green for values >= 0 and
// red otherwise.
//
// value may be a decimal, an integer, a float64 or a numeric string; it is
// coerced through exact string parsing, never through binary floats.
func FormatNumber(value any, totalWidth, places int, humanReadable, colorize, colorEnabled bool) (string, error) {
	d, err := pdecimal.From(value)
	if err != nil {
		return "", &FormatError{Value: value, Err: err}
	}

	d = d.Round(int32(places))
	s := groupThousands(d.StringFixed(int32(places)))
	if humanReadable && places > 0 {
		s = blankTrailingZeros(s)
	}
	if pad := totalWidth - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	if colorize && colorEnabled {
		if d.IsNegative() {
			s = lossColor.Sprint(s)
		} else {
			s = gainColor.Sprint(s)
		}
	}
	return s, nil
}

// groupThousands inserts comma separators into the integer part of a plain
// decimal string such as "-1234.50".
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := sign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}

// blankTrailingZeros replaces insignificant trailing fraction zeros with
// spaces: "22.00" becomes "22   ", "2.30" becomes "2.3 ". The integer part
// and significant fraction digits are never touched, and the string length
// is preserved so column alignment survives.
func blankTrailingZeros(s string) string {
	intPart, frac, ok := strings.Cut(s, ".")
	if !ok {
		return s
	}
	kept := strings.TrimRight(frac, "0")
	if kept == "" {
		// the decimal point alone would dangle, blank it too
		return intPart + strings.Repeat(" ", len(frac)+1)
	}
	return intPart + "." + kept + strings.Repeat(" ", len(frac)-len(kept))
}
