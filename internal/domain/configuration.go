package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Configuration is the full content of a coinfolio YAML file: where to fetch
// prices from, how to render the table, and the trade ledger itself.
type Configuration struct {
	API       APIConfig          `yaml:"api"`
	Display   DisplayConfig      `yaml:"display"`
	Portfolio map[string][]Trade `yaml:"portfolio"`
}

// APIConfig configures the remote price feed client.
type APIConfig struct {
	BaseURL        string `yaml:"base_url,omitempty"`
	QuoteCurrency  string `yaml:"quote_currency,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// DisplayConfig configures the rendered table.
type DisplayConfig struct {
	Columns       []string `yaml:"columns,omitempty"`
	Border        string   `yaml:"border,omitempty"`
	Color         bool     `yaml:"color"`
	HumanReadable bool     `yaml:"human_readable"`
}

// tradeYAML mirrors Trade with scalar fields so amounts and prices pass
// through decimal.NewFromString instead of a float64 detour.
type tradeYAML struct {
	Amount string `yaml:"amount"`
	Price  string `yaml:"price"`
	Date   string `yaml:"date"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Trade.
func (t *Trade) UnmarshalYAML(value *yaml.Node) error {
	var aux tradeYAML
	if err := value.Decode(&aux); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(aux.Amount)
	if err != nil {
		return fmt.Errorf("invalid trade amount %q: %w", aux.Amount, err)
	}
	price, err := decimal.NewFromString(aux.Price)
	if err != nil {
		return fmt.Errorf("invalid trade price %q: %w", aux.Price, err)
	}

	t.Amount = amount
	t.Price = price
	t.Date = aux.Date
	return nil
}

// MarshalYAML renders the decimal fields as plain scalars, keeping saved
// configs round-trippable.
func (t Trade) MarshalYAML() (interface{}, error) {
	return tradeYAML{
		Amount: t.Amount.String(),
		Price:  t.Price.String(),
		Date:   t.Date,
	}, nil
}
