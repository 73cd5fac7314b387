// Command coinfolio prints the current state of a cryptocurrency portfolio:
// it loads the trade ledger from a YAML file, fetches live prices, and
// renders a profit/loss table on stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coinfolio/portfolio-tracker/internal/config"
	"github.com/coinfolio/portfolio-tracker/internal/domain"
	"github.com/coinfolio/portfolio-tracker/internal/market"
	"github.com/coinfolio/portfolio-tracker/internal/output"
)

const defaultConfigFile = "coinfolio.yaml"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configFile    string
	columns       []string
	border        string
	noColor       bool
	humanReadable bool
	verbose       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "coinfolio",
		Short:         "Track the value of your cryptocurrency portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", defaultConfigFile, "portfolio configuration file")
	cmd.Flags().StringSliceVar(&opts.columns, "columns", nil, "column order, e.g. coin,amount,profit")
	cmd.Flags().StringVar(&opts.border, "border", "", "border style: ascii, thin or thick")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored profit/loss values")
	cmd.Flags().BoolVar(&opts.humanReadable, "human", false, "hide insignificant trailing zeros")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging to stderr")

	cmd.AddCommand(newInitCmd())
	return cmd
}

func runReport(cmd *cobra.Command, opts *rootOptions) error {
	log := newLogger(opts.verbose)
	defer func() { _ = log.Sync() }()

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(opts.configFile)
	if err != nil {
		return err
	}

	// command line flags win over the config file
	if len(opts.columns) > 0 {
		cfg.Display.Columns = opts.columns
		if err := parser.ValidateConfiguration(cfg); err != nil {
			return err
		}
	}
	if opts.border != "" {
		cfg.Display.Border = opts.border
	}
	if opts.noColor {
		cfg.Display.Color = false
	}
	if opts.humanReadable {
		cfg.Display.HumanReadable = true
	}

	client := market.NewClient(cfg.API, log)
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	// a failed fetch is not fatal: the report degrades to a header and a
	// zero totals row
	quotes, err := client.Fetch(ctx, domain.Symbols(cfg.Portfolio))
	if err != nil {
		log.Warnw("price fetch failed, rendering without quotes", "provider", client.Name(), "err", err)
		quotes = nil
	}

	formatter := output.PortfolioFormatter{Config: config.RenderConfig(cfg.Display)}
	report, err := formatter.Format(domain.BuildPositions(cfg.Portfolio, quotes))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(report)
	return err
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write an example portfolio configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := defaultConfigFile
			if len(args) == 1 {
				filename = args[0]
			}
			if _, err := os.Stat(filename); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", filename)
			}
			example := config.NewInputParser().CreateExampleConfiguration()
			if err := config.SaveConfiguration(example, filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote example configuration to %s\n", filename)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func newLogger(verbose bool) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
