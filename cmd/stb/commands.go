package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/stb/internal/services/dashboard"
	"github.com/bobmcallan/stb/internal/services/report"
)

var (
	accountID int64
	startDate string
	endDate   string
	chartOut  string
)

func init() {
	statementsCmd.Flags().Int64Var(&accountID, "account", 0, "cash account ID to select")
	statementsCmd.Flags().StringVar(&startDate, "start", "", "start date, YYYY-MM-DD (default: lookback window)")
	statementsCmd.Flags().StringVar(&endDate, "end", "", "end date, YYYY-MM-DD (default: today)")
	statementsCmd.MarkFlagRequired("account")

	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "", "output file (default: NAME.png)")

	rootCmd.AddCommand(statementsCmd, summaryCmd, marketCmd, chartCmd)
}

var statementsCmd = &cobra.Command{
	Use:   "statements",
	Short: "Select a cash account and print its statements",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		result, err := a.CashService.SelectAccount(cmd.Context(), accountID, startDate, endDate)
		if err != nil {
			return err
		}
		return printMarkdown(cmd, report.FormatStatements(result, a.Store.Snapshot().CashStatements))
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the portfolio summary, allocations and holdings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		d, err := a.DashboardService.Build(cmd.Context())
		if err != nil {
			return err
		}
		return printMarkdown(cmd, report.FormatSummary(d))
	},
}

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Print market highlights, the index trend and top movers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		d, err := a.DashboardService.Build(cmd.Context())
		if err != nil {
			return err
		}
		return printMarkdown(cmd, report.FormatMarket(d))
	},
}

var chartCmd = &cobra.Command{
	Use:       "chart NAME",
	Short:     "Render a dashboard chart to PNG",
	Long:      `Renders one of: trend, sector-allocation, sector-performance.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"trend", "sector-allocation", "sector-performance"},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		snap := a.Store.Snapshot()
		cfg, err := dashboard.ChartFor(name, snap)
		if err != nil {
			return err
		}
		png, err := a.Charts.Render(name, snap.Version, cfg)
		if err != nil {
			return err
		}

		out := chartOut
		if out == "" {
			out = name + ".png"
		}
		if err := os.WriteFile(out, png, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", out, len(png))
		return nil
	},
}
