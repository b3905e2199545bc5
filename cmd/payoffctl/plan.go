package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/payoff-server/internal/cli"
	"github.com/carson-networks/payoff-server/internal/payoff"
)

var (
	flagStrategy string
	flagSchedule bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Simulate one strategy and print the payoff plan",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&flagStrategy, "strategy", "s", "", "avalanche or snowball, overrides strategy in the file")
	planCmd.Flags().BoolVar(&flagSchedule, "schedule", false, "Print the month by month schedule")
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	in, err := loadInput()
	if err != nil {
		return err
	}

	name := flagStrategy
	if name == "" {
		name = in.file.Strategy
	}
	if name == "" {
		name = string(payoff.StrategyAvalanche)
	}
	strategy, err := payoff.ParseStrategy(name)
	if err != nil {
		return err
	}

	plan, err := newSimulator().Simulate(in.accounts, strategy, in.budget)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DEBT PAYOFF  %s", strategy)))
	fmt.Println()
	fmt.Print(cli.RenderPlanSummary(plan))
	if flagSchedule {
		fmt.Println()
		fmt.Print(cli.RenderSchedule(plan))
	}
	fmt.Println()

	return nil
}
