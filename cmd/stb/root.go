package main

import (
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/bobmcallan/stb/internal/app"
	"github.com/bobmcallan/stb/internal/common"
)

var (
	configPath string
	rawOutput  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to stb.toml (default: STB_CONFIG, then next to the binary)")
	rootCmd.PersistentFlags().BoolVar(&rawOutput, "raw", false, "print markdown without terminal styling")
}

var rootCmd = &cobra.Command{
	Use:           "stb",
	Version:       common.GetFullVersion(),
	Short:         "STB dashboard views in the terminal",
	Long:          `Prints portfolio, market and cash statement views from the persisted dashboard state.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadApp builds the App with the store seeded from the state files.
func loadApp(cmd *cobra.Command) (*app.App, error) {
	return app.NewApp(cmd.Context(), configPath)
}

// printMarkdown writes md to stdout, styled for the terminal unless --raw.
func printMarkdown(cmd *cobra.Command, md string) error {
	out := cmd.OutOrStdout()
	if rawOutput {
		_, err := out.Write([]byte(md))
		return err
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return err
	}
	styled, err := r.Render(md)
	if err != nil {
		return err
	}
	_, err = out.Write([]byte(styled))
	return err
}
