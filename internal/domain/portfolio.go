package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Trade is a single historical purchase of a coin: how much was bought,
// at which unit price, and when.
type Trade struct {
	Amount decimal.Decimal
	Price  decimal.Decimal
	Date   string
}

// Invest returns the capital originally spent on this trade.
func (t Trade) Invest() decimal.Decimal {
	return t.Amount.Mul(t.Price)
}

// Quote is a current market price observation for one coin.
type Quote struct {
	Symbol string
	Price  decimal.Decimal
}

// Position pairs one trade with the live quote of its coin. All derived
// figures are computed on demand so a Position stays a plain value.
type Position struct {
	Coin     string
	Trade    Trade
	NowPrice decimal.Decimal
}

// Invest returns the capital originally spent (amount x buy price).
func (p Position) Invest() decimal.Decimal {
	return p.Trade.Invest()
}

// Wealth returns the current market value (amount x current price).
func (p Position) Wealth() decimal.Decimal {
	return p.Trade.Amount.Mul(p.NowPrice)
}

// Profit returns the unrealized gain or loss.
func (p Position) Profit() decimal.Decimal {
	return p.Wealth().Sub(p.Invest())
}

// Percent returns the profit as a percentage of the invested capital.
// A zero investment yields zero rather than a division error.
func (p Position) Percent() decimal.Decimal {
	invest := p.Invest()
	if invest.IsZero() {
		return decimal.Zero
	}
	return p.Profit().Div(invest).Mul(decimal.NewFromInt(100))
}

// Totals aggregates the invested capital, current value and profit of a set
// of positions.
type Totals struct {
	Invest decimal.Decimal
	Wealth decimal.Decimal
	Profit decimal.Decimal
}

// Percent returns the overall profit percentage, zero when nothing was
// invested.
func (t Totals) Percent() decimal.Decimal {
	if t.Invest.IsZero() {
		return decimal.Zero
	}
	return t.Profit.Div(t.Invest).Mul(decimal.NewFromInt(100))
}

// Sum computes the aggregate row over positions. An empty input produces
// all-zero totals, which still renders as a valid footer.
func Sum(positions []Position) Totals {
	t := Totals{Invest: decimal.Zero, Wealth: decimal.Zero, Profit: decimal.Zero}
	for _, p := range positions {
		t.Invest = t.Invest.Add(p.Invest())
		t.Wealth = t.Wealth.Add(p.Wealth())
		t.Profit = t.Profit.Add(p.Profit())
	}
	return t
}

// BuildPositions joins the trade ledger with the fetched quotes. Coins
// without a quote are skipped entirely, so an empty quote list yields zero
// positions. Output is ordered by coin symbol, trades in ledger order.
func BuildPositions(ledger map[string][]Trade, quotes []Quote) []Position {
	prices := make(map[string]decimal.Decimal, len(quotes))
	for _, q := range quotes {
		prices[strings.ToUpper(q.Symbol)] = q.Price
	}

	coins := make([]string, 0, len(ledger))
	for coin := range ledger {
		coins = append(coins, coin)
	}
	sort.Strings(coins)

	var positions []Position
	for _, coin := range coins {
		price, ok := prices[strings.ToUpper(coin)]
		if !ok {
			continue
		}
		for _, trade := range ledger[coin] {
			positions = append(positions, Position{Coin: coin, Trade: trade, NowPrice: price})
		}
	}
	return positions
}

// Symbols returns the distinct upper-cased coin symbols of a ledger, sorted,
// suitable for a price feed request.
func Symbols(ledger map[string][]Trade) []string {
	seen := make(map[string]bool, len(ledger))
	symbols := make([]string, 0, len(ledger))
	for coin, trades := range ledger {
		if len(trades) == 0 {
			continue
		}
		symbol := strings.ToUpper(coin)
		if !seen[symbol] {
			seen[symbol] = true
			symbols = append(symbols, symbol)
		}
	}
	sort.Strings(symbols)
	return symbols
}
