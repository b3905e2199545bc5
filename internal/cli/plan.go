package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carson-networks/payoff-server/internal/payoff"
)

// RenderPlanSummary renders the totals and one row per account.
func RenderPlanSummary(plan *payoff.PayoffPlan) string {
	var b strings.Builder

	b.WriteString(RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Strategy", string(plan.Strategy)},
			{"Monthly budget", plan.MonthlyBudget.StringFixed(2)},
			{"Debt free in", fmt.Sprintf("%d months (%s)", plan.TotalMonths, FormatMonths(plan.TotalMonths))},
			{"---"},
			{"Starting debt", plan.StartingDebt().StringFixed(2)},
			{"Interest paid", plan.TotalInterestPaid.StringFixed(2)},
			{"Total paid", plan.TotalAmountPaid.StringFixed(2)},
		},
	}))
	b.WriteString("\n")

	rows := make([][]string, len(plan.Accounts))
	for i, a := range plan.Accounts {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			a.AccountName,
			a.StartingBalance.StringFixed(2),
			a.InterestPaid.StringFixed(2),
			a.AmountPaid.StringFixed(2),
			strconv.Itoa(a.PayoffMonth),
		}
	}
	b.WriteString(RenderTable(Table{
		Title:   "Accounts in priority order",
		Headers: []string{"#", "Account", "Balance", "Interest", "Paid", "Paid off"},
		Rows:    rows,
	}))

	return b.String()
}

// RenderSchedule renders one row per month with a payment column per account.
func RenderSchedule(plan *payoff.PayoffPlan) string {
	headers := []string{"Month"}
	for _, a := range plan.Accounts {
		headers = append(headers, a.AccountName)
	}
	headers = append(headers, "Interest", "Paid", "Remaining")

	rows := make([][]string, len(plan.Schedule))
	for i, entry := range plan.Schedule {
		row := []string{strconv.Itoa(entry.Month)}
		for _, p := range entry.Payments {
			row = append(row, p.Payment.StringFixed(2))
		}
		row = append(row,
			entry.TotalInterest.StringFixed(2),
			entry.TotalPayment.StringFixed(2),
			entry.RemainingDebt.StringFixed(2),
		)
		rows[i] = row
	}

	return RenderTable(Table{
		Title:   "Schedule",
		Headers: headers,
		Rows:    rows,
	})
}

// RenderComparison renders both strategies side by side.
func RenderComparison(cmp *payoff.Comparison) string {
	saved := cmp.InterestSaved.StringFixed(2)
	if cmp.InterestSaved.IsPositive() {
		saved = RenderGood(saved)
	}
	months := strconv.Itoa(cmp.MonthsSaved)
	if cmp.MonthsSaved < 0 {
		months = RenderWarn(months)
	}

	return RenderTable(Table{
		Headers: []string{"Metric", "Avalanche", "Snowball"},
		Rows: [][]string{
			{"Months", strconv.Itoa(cmp.Avalanche.TotalMonths), strconv.Itoa(cmp.Snowball.TotalMonths)},
			{"Interest paid", cmp.Avalanche.TotalInterestPaid.StringFixed(2), cmp.Snowball.TotalInterestPaid.StringFixed(2)},
			{"Total paid", cmp.Avalanche.TotalAmountPaid.StringFixed(2), cmp.Snowball.TotalAmountPaid.StringFixed(2)},
			{"First target", firstTarget(cmp.Avalanche), firstTarget(cmp.Snowball)},
			{"---"},
			{"Interest saved", saved, ""},
			{"Months saved", months, ""},
			{"Recommended", string(cmp.Recommended), ""},
		},
	})
}

func firstTarget(plan *payoff.PayoffPlan) string {
	if len(plan.Accounts) == 0 {
		return ""
	}
	return plan.Accounts[0].AccountName
}
