package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/carson-networks/payoff-server/internal/cli"
	"github.com/carson-networks/payoff-server/internal/payoff"
)

var (
	flagFile   string
	flagBudget string
	flagMonths int
)

var rootCmd = &cobra.Command{
	Use:           "payoffctl",
	Short:         "Debt payoff simulator",
	Long:          "Simulate paying down debts with the avalanche or snowball strategy.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderWarn("  error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "debts.toml", "TOML file with [[account]] entries")
	rootCmd.PersistentFlags().StringVarP(&flagBudget, "budget", "b", "", "Monthly budget, overrides monthly_budget in the file")
	rootCmd.PersistentFlags().IntVar(&flagMonths, "max-months", payoff.DefaultMaxMonths, "Give up after this many months")
}

// input is what every command needs before it can simulate.
type input struct {
	file     *cli.File
	accounts []payoff.Account
	budget   decimal.Decimal
}

// loadInput reads --file and applies --budget on top of it.
func loadInput() (*input, error) {
	f, err := cli.LoadFile(flagFile)
	if err != nil {
		return nil, err
	}
	accounts, err := f.PayoffAccounts()
	if err != nil {
		return nil, err
	}

	budget := f.MonthlyBudget.Decimal
	if flagBudget != "" {
		budget, err = decimal.NewFromString(flagBudget)
		if err != nil {
			return nil, fmt.Errorf("invalid --budget %q", flagBudget)
		}
	} else if !f.MonthlyBudget.Set {
		return nil, errors.New("no monthly budget: set monthly_budget in the file or pass --budget")
	}
	if !budget.IsPositive() {
		return nil, errors.New("monthly budget must be greater than 0")
	}

	return &input{file: f, accounts: accounts, budget: budget}, nil
}

func newSimulator() *payoff.Simulator {
	return payoff.NewSimulator(payoff.Options{MaxMonths: flagMonths})
}
