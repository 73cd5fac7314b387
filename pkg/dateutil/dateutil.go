// Package dateutil normalizes the date strings found in trade ledgers.
// Users write dates by hand, so a handful of common layouts are accepted
// and canonicalized to ISO form.
package dateutil

import (
	"fmt"
	"time"
)

// ISODate is the canonical layout trades are displayed and stored in.
const ISODate = "2006-01-02"

// tradeLayouts are the accepted input layouts, tried in order.
var tradeLayouts = []string{
	ISODate,
	"2006/01/02",
	"02.01.2006",
	"01/02/2006",
	time.RFC3339,
}

// ParseTradeDate parses a ledger date string in one of the accepted layouts.
func ParseTradeDate(s string) (time.Time, error) {
	for _, layout := range tradeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want e.g. %s)", s, ISODate)
}

// Normalize parses s and returns it in the canonical ISO layout.
func Normalize(s string) (string, error) {
	t, err := ParseTradeDate(s)
	if err != nil {
		return "", err
	}
	return t.Format(ISODate), nil
}
