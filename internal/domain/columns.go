package domain

// Column identifiers recognized in the display configuration.
const (
	ColCoin     = "coin"
	ColDate     = "date"
	ColBuyPrice = "buyprice"
	ColNowPrice = "nowprice"
	ColAmount   = "amount"
	ColInvest   = "invest"
	ColWealth   = "wealth"
	ColProfit   = "profit"
	ColPercent  = "percent"
)

// ColumnSpec describes one known column: its display width (padding
// included), the number of decimal places for numeric columns (-1 for
// text columns) and the heading printed in the header row. Width is not
// checked against the heading length; callers pick sane widths.
type ColumnSpec struct {
	Name      string
	Width     int
	Precision int
	Heading   string
}

// Numeric reports whether cells of this column go through the number
// formatter.
func (c ColumnSpec) Numeric() bool { return c.Precision >= 0 }

// Columns is the fixed set of known column specs, keyed by identifier.
var Columns = map[string]ColumnSpec{
	ColCoin:     {Name: ColCoin, Width: 6, Precision: -1, Heading: "coin"},
	ColDate:     {Name: ColDate, Width: 10, Precision: -1, Heading: "date"},
	ColBuyPrice: {Name: ColBuyPrice, Width: 12, Precision: 2, Heading: "buy price"},
	ColNowPrice: {Name: ColNowPrice, Width: 12, Precision: 2, Heading: "now price"},
	ColAmount:   {Name: ColAmount, Width: 14, Precision: 8, Heading: "amount"},
	ColInvest:   {Name: ColInvest, Width: 12, Precision: 2, Heading: "invest"},
	ColWealth:   {Name: ColWealth, Width: 12, Precision: 2, Heading: "wealth"},
	ColProfit:   {Name: ColProfit, Width: 12, Precision: 2, Heading: "profit"},
	ColPercent:  {Name: ColPercent, Width: 9, Precision: 2, Heading: "percent"},
}

// DefaultColumnOrder is used when the configuration does not name columns.
var DefaultColumnOrder = []string{
	ColCoin, ColAmount, ColBuyPrice, ColNowPrice, ColInvest, ColWealth, ColProfit, ColPercent,
}

// BorderStyle selects one of the predefined border glyph sets.
type BorderStyle string

const (
	BorderASCII BorderStyle = "ascii"
	BorderThin  BorderStyle = "thin"
	BorderThick BorderStyle = "thick"
)

// ParseBorderStyle maps a user-supplied name to a style. Unknown names fall
// back to ascii; leniency here is deliberate, a typo in the config should
// not kill the report.
func ParseBorderStyle(name string) BorderStyle {
	switch BorderStyle(name) {
	case BorderThin:
		return BorderThin
	case BorderThick:
		return BorderThick
	default:
		return BorderASCII
	}
}

// RenderConfig carries everything the report rendering needs, derived once
// per invocation from config file and flags, immutable afterwards.
type RenderConfig struct {
	Columns       []string
	Border        BorderStyle
	Color         bool
	HumanReadable bool
}
