package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mortgage-simulator/domain"
	"mortgage-simulator/pkg/log"
	"mortgage-simulator/repository"
	"mortgage-simulator/service"
)

func simulateCmd() *cobra.Command {
	var input domain.ScenarioInput

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a one-shot buy-vs-invest simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(input)
		},
	}

	cmd.Flags().Float64Var(&input.CashAvailable, "cash", 300000, "Available cash for the down payment")
	cmd.Flags().Float64Var(&input.PropertyValue, "price", 450000, "Property price")
	cmd.Flags().Float64Var(&input.TaxRate, "taxes", 10, "Purchase taxes as % of the property price")
	cmd.Flags().Float64Var(&input.InterestRate, "rate", 3.5, "Mortgage annual interest rate (APR) in %")
	cmd.Flags().IntVar(&input.TermYears, "years", 30, "Mortgage term in years")
	cmd.Flags().Float64Var(&input.InvestmentReturn, "investment-return", 7, "Expected annual investment return in %")
	cmd.Flags().Float64Var(&input.PropertyAppreciation, "appreciation", 2, "Expected annual property appreciation in %")
	cmd.Flags().Float64Var(&input.DownPayment, "down", 60000, "Down payment amount")

	return cmd
}

func runSimulate(input domain.ScenarioInput) error {
	logger := log.NewNop()

	cache, err := repository.NewLRUCache(16)
	if err != nil {
		return err
	}

	mortgageService := service.NewMortgageService(logger, repository.NewCalculationRepositoryMemory(), cache)
	scenarioService := service.NewScenarioService(logger, mortgageService)

	result, err := scenarioService.Simulate(context.Background(), input)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Simulation Results")
	fmt.Fprintln(w, "------------------")
	fmt.Fprintf(w, "Monthly payment\t$%.2f\n", result.MonthlyPayment)
	fmt.Fprintf(w, "Purchase cost\t$%.2f\n", result.PurchaseCost)
	fmt.Fprintf(w, "Down payment\t$%.2f\n", result.DownPayment)
	fmt.Fprintf(w, "Mortgage principal\t$%.2f\n", result.Principal)
	fmt.Fprintf(w, "Initial investment\t$%.2f\n", result.InitialInvestment)
	fmt.Fprintf(w, "Interest paid\t$%.2f\n", result.InterestPaid)
	fmt.Fprintf(w, "Total paid\t$%.2f\n", result.TotalPaid)
	fmt.Fprintf(w, "Final property value\t$%.2f\n", result.FinalPropertyValue)
	fmt.Fprintf(w, "Final investment value\t$%.2f\n", result.FinalInvestmentValue)
	fmt.Fprintf(w, "Final net worth\t$%.2f\n", result.FinalNetWorth)
	return w.Flush()
}
