package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/payoff-server/internal/cli"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run avalanche and snowball side by side",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	in, err := loadInput()
	if err != nil {
		return err
	}

	cmp, err := newSimulator().Compare(in.accounts, in.budget)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DEBT PAYOFF  avalanche vs snowball"))
	fmt.Println()
	fmt.Print(cli.RenderComparison(cmp))
	fmt.Println()

	return nil
}
