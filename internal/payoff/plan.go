package payoff

import "github.com/shopspring/decimal"

// AccountPayment is what one account received in one month.
type AccountPayment struct {
	AccountID        string          `json:"accountId"`
	AccountName      string          `json:"accountName"`
	Payment          decimal.Decimal `json:"payment"`
	InterestPaid     decimal.Decimal `json:"interestPaid"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// MonthEntry is one simulated month. Payments follow the strategy order.
type MonthEntry struct {
	Month                  int              `json:"month"`
	Payments               []AccountPayment `json:"payments"`
	TotalPayment           decimal.Decimal  `json:"totalPayment"`
	TotalInterest          decimal.Decimal  `json:"totalInterest"`
	RemainingDebt          decimal.Decimal  `json:"remainingDebt"`
	CumulativeInterestPaid decimal.Decimal  `json:"cumulativeInterestPaid"`
	CumulativeAmountPaid   decimal.Decimal  `json:"cumulativeAmountPaid"`
}

// AccountSummary aggregates one account over the whole run.
type AccountSummary struct {
	AccountID       string          `json:"accountId"`
	AccountName     string          `json:"accountName"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
	InterestPaid    decimal.Decimal `json:"interestPaid"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	// PayoffMonth is the month the balance reached zero, 0 if it started at zero.
	PayoffMonth int `json:"payoffMonth"`
}

// PayoffPlan is the result of a simulation.
type PayoffPlan struct {
	Strategy          Strategy         `json:"strategy"`
	MonthlyBudget     decimal.Decimal  `json:"monthlyBudget"`
	TotalMonths       int              `json:"totalMonths"`
	TotalInterestPaid decimal.Decimal  `json:"totalInterestPaid"`
	TotalAmountPaid   decimal.Decimal  `json:"totalAmountPaid"`
	Schedule          []MonthEntry     `json:"schedule"`
	Accounts          []AccountSummary `json:"accounts"`
}

// StartingDebt is the sum of starting balances.
func (p *PayoffPlan) StartingDebt() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Accounts {
		total = total.Add(a.StartingBalance)
	}
	return total
}
