package service

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/payoff-server/internal/cache"
	"github.com/carson-networks/payoff-server/internal/payoff"
)

// PayoffRequest is the input of a payoff calculation in the service layer.
type PayoffRequest struct {
	Accounts      []payoff.Account
	Strategy      payoff.Strategy
	MonthlyBudget decimal.Decimal
}

const (
	planKeyPrefix    = "payoff:plan"
	compareKeyPrefix = "payoff:compare"
)

// cacheKey identifies a request. Account order is part of the key because it
// decides ties between equal rates and balances.
func (r PayoffRequest) cacheKey(prefix string, maxMonths int) string {
	parts := make([]string, 0, 3+5*len(r.Accounts))
	parts = append(parts,
		string(r.Strategy),
		r.MonthlyBudget.String(),
		strconv.Itoa(maxMonths),
	)
	for _, a := range r.Accounts {
		parts = append(parts,
			a.ID,
			a.Name,
			a.Balance.String(),
			a.AnnualInterestRate.String(),
			a.MinPayment.String(),
		)
	}
	return cache.Key(prefix, parts...)
}
