package output

import (
	"bytes"
	"fmt"

	"github.com/coinfolio/portfolio-tracker/internal/domain"
)

// totalsLabel is printed in the coin column of the aggregate row.
const totalsLabel = "total"

// PortfolioFormatter assembles the full console report: header, one row per
// position, and an aggregate totals row, framed by border separators.
type PortfolioFormatter struct {
	Config domain.RenderConfig
}

func (f PortfolioFormatter) Name() string { return "console" }

// Format renders the table. With no positions (typically a failed or empty
// price fetch) it still emits the header and an all-zero totals row.
func (f PortfolioFormatter) Format(positions []domain.Position) ([]byte, error) {
	specs, err := f.columnSpecs()
	if err != nil {
		return nil, err
	}

	table := NewTable(len(specs), f.Config.Border)
	widths := make([]int, len(specs))
	headings := make([]string, len(specs))
	for i, spec := range specs {
		widths[i] = spec.Width
		headings[i] = spec.Heading
	}
	table.SetColumnWidths(widths)

	var buf bytes.Buffer
	writeLine := func(s string) { buf.WriteString(s); buf.WriteByte('\n') }

	header, err := table.Row(headings)
	if err != nil {
		return nil, err
	}
	writeLine(table.SeparatorFirst())
	writeLine(header)
	writeLine(table.Separator())

	for _, p := range positions {
		cells, err := f.positionCells(specs, p)
		if err != nil {
			return nil, err
		}
		row, err := table.Row(cells)
		if err != nil {
			return nil, err
		}
		writeLine(row)
	}

	if len(positions) > 0 {
		writeLine(table.Separator())
	}
	cells, err := f.totalsCells(specs, domain.Sum(positions))
	if err != nil {
		return nil, err
	}
	row, err := table.Row(cells)
	if err != nil {
		return nil, err
	}
	writeLine(row)
	writeLine(table.SeparatorLast())

	return buf.Bytes(), nil
}

// columnSpecs resolves the configured column order against the known specs.
func (f PortfolioFormatter) columnSpecs() ([]domain.ColumnSpec, error) {
	order := f.Config.Columns
	if len(order) == 0 {
		order = domain.DefaultColumnOrder
	}
	specs := make([]domain.ColumnSpec, len(order))
	for i, name := range order {
		spec, ok := domain.Columns[name]
		if !ok {
			return nil, fmt.Errorf("unknown column %q", name)
		}
		specs[i] = spec
	}
	return specs, nil
}

func (f PortfolioFormatter) positionCells(specs []domain.ColumnSpec, p domain.Position) ([]string, error) {
	cells := make([]string, len(specs))
	for i, spec := range specs {
		var err error
		switch spec.Name {
		case domain.ColCoin:
			cells[i] = p.Coin
		case domain.ColDate:
			cells[i] = p.Trade.Date
		case domain.ColBuyPrice:
			cells[i], err = f.number(spec, p.Trade.Price, false)
		case domain.ColNowPrice:
			cells[i], err = f.number(spec, p.NowPrice, false)
		case domain.ColAmount:
			cells[i], err = f.number(spec, p.Trade.Amount, false)
		case domain.ColInvest:
			cells[i], err = f.number(spec, p.Invest(), false)
		case domain.ColWealth:
			cells[i], err = f.number(spec, p.Wealth(), false)
		case domain.ColProfit:
			cells[i], err = f.number(spec, p.Profit(), true)
		case domain.ColPercent:
			cells[i], err = f.number(spec, p.Percent(), true)
		}
		if err != nil {
			return nil, err
		}
	}
	return cells, nil
}

// totalsCells builds the aggregate row: sums where summing makes sense,
// blanks for per-trade columns.
func (f PortfolioFormatter) totalsCells(specs []domain.ColumnSpec, totals domain.Totals) ([]string, error) {
	cells := make([]string, len(specs))
	for i, spec := range specs {
		var err error
		switch spec.Name {
		case domain.ColCoin:
			cells[i] = totalsLabel
		case domain.ColInvest:
			cells[i], err = f.number(spec, totals.Invest, false)
		case domain.ColWealth:
			cells[i], err = f.number(spec, totals.Wealth, false)
		case domain.ColProfit:
			cells[i], err = f.number(spec, totals.Profit, true)
		case domain.ColPercent:
			cells[i], err = f.number(spec, totals.Percent(), true)
		default:
			cells[i] = ""
		}
		if err != nil {
			return nil, err
		}
	}
	return cells, nil
}

func (f PortfolioFormatter) number(spec domain.ColumnSpec, value any, colorize bool) (string, error) {
	return FormatNumber(value, spec.Width, spec.Precision, f.Config.HumanReadable, colorize, f.Config.Color)
}
