// Package main provides the mortgagesim binary entry point.
// Mortgagesim computes fixed-rate mortgage payments and runs buy-vs-invest
// simulations, served over HTTP or as a one-shot CLI run.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "mortgagesim"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Mortgage payment and buy-vs-invest simulator",
		Long: `Mortgagesim computes fixed-rate mortgage monthly payments and
amortization schedules, and simulates how buying a property with a given
down payment compares against keeping the cash invested.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(simulateCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}
