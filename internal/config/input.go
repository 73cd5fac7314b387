package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/coinfolio/portfolio-tracker/internal/domain"
	"github.com/coinfolio/portfolio-tracker/pkg/dateutil"
)

// InputParser handles loading and validation of coinfolio configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. Trade dates are
// normalized to ISO form as a side effect. An unknown border style is left
// alone on purpose, the renderer falls back to ascii.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	for _, name := range config.Display.Columns {
		if _, ok := domain.Columns[name]; !ok {
			return fmt.Errorf("unknown column %q", name)
		}
	}

	if config.API.TimeoutSeconds < 0 {
		return fmt.Errorf("api timeout cannot be negative")
	}

	for coin, trades := range config.Portfolio {
		if coin == "" {
			return fmt.Errorf("portfolio contains an entry with an empty coin symbol")
		}
		for i := range trades {
			if err := ip.validateTrade(&trades[i]); err != nil {
				return fmt.Errorf("trade %d of %s: %w", i+1, coin, err)
			}
		}
	}
	return nil
}

func (ip *InputParser) validateTrade(trade *domain.Trade) error {
	if trade.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive, got %s", trade.Amount)
	}
	if trade.Price.IsNegative() {
		return fmt.Errorf("price cannot be negative, got %s", trade.Price)
	}
	if trade.Date != "" {
		normalized, err := dateutil.Normalize(trade.Date)
		if err != nil {
			return err
		}
		trade.Date = normalized
	}
	return nil
}

// RenderConfig derives the immutable render configuration from the display
// section.
func RenderConfig(display domain.DisplayConfig) domain.RenderConfig {
	columns := display.Columns
	if len(columns) == 0 {
		columns = domain.DefaultColumnOrder
	}
	return domain.RenderConfig{
		Columns:       columns,
		Border:        domain.ParseBorderStyle(display.Border),
		Color:         display.Color,
		HumanReadable: display.HumanReadable,
	}
}

// CreateExampleConfiguration returns a starter configuration with a couple
// of example trades.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		API: domain.APIConfig{
			QuoteCurrency:  "USD",
			TimeoutSeconds: 10,
		},
		Display: domain.DisplayConfig{
			Columns:       domain.DefaultColumnOrder,
			Border:        string(domain.BorderThin),
			Color:         true,
			HumanReadable: true,
		},
		Portfolio: map[string][]domain.Trade{
			"BTC": {
				{Amount: decimal.RequireFromString("0.25"), Price: decimal.RequireFromString("34000"), Date: "2024-11-02"},
				{Amount: decimal.RequireFromString("0.1"), Price: decimal.RequireFromString("59300.50"), Date: "2025-03-18"},
			},
			"ETH": {
				{Amount: decimal.RequireFromString("2.5"), Price: decimal.RequireFromString("1850.75"), Date: "2024-08-21"},
			},
		},
	}
}

// SaveConfiguration writes a configuration back to disk as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
