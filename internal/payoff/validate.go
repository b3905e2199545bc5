package payoff

import "github.com/shopspring/decimal"

// TotalMinPayment sums the minimum payment of every account.
func TotalMinPayment(accounts []Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.MinPayment)
	}
	return total
}

// ValidateBudget fails with *InsufficientBudgetError when budget does not cover
// the sum of minimum payments. Individual account fields are not checked.
func ValidateBudget(accounts []Account, budget decimal.Decimal) error {
	required := TotalMinPayment(accounts)
	if budget.LessThan(required) {
		return &InsufficientBudgetError{Required: required, Budget: budget}
	}
	return nil
}
