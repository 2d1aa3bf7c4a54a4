package main

import (
	"github.com/spf13/cobra"

	"github.com/gyeh/carebalance/internal/config"
)

var cfg = config.New()

var rootCmd = &cobra.Command{
	Use:   "carebalance",
	Short: "24h fluid balance with perspiration estimate and separate ECT",
	Long: "Computes a clinical fluid balance normalized to 24 hours, estimates insensible loss " +
		"from weight and risk factors, and composes a nursing note.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Minimum log level")
}
