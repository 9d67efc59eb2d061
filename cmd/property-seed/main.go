package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/property-seed/internal/commands"
	"github.com/beesaferoot/property-seed/internal/config"
	"github.com/beesaferoot/property-seed/internal/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.InitLogger(cfg)
	log.AddGlobalField("Environment", cfg.Environment.Value)

	rootCmd := &cobra.Command{
		Use:          "property-seed",
		Short:        "Synthetic property management dataset generator",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		commands.GenerateCmd(),
		commands.LoadCmd(),
		commands.ValidateCmd(),
		commands.InitCmd(),
		commands.UpCmd(),
		commands.DownCmd(),
		commands.StatusCmd(),
		commands.HistoryCmd(),
		commands.PaymentCmd(),
		commands.ReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
