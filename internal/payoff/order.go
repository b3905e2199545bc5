package payoff

import (
	"slices"
)

// Ordering is the priority list computed once from the starting balances and
// rates. It is never re-sorted while a simulation runs.
type Ordering struct {
	strategy Strategy
	accounts []Account
}

// Order sorts accounts for strategy. Equal keys keep their input order.
func Order(accounts []Account, strategy Strategy) (Ordering, error) {
	if !strategy.valid() {
		return Ordering{}, invalidStrategy(string(strategy))
	}

	sorted := slices.Clone(accounts)
	switch strategy {
	case StrategyAvalanche:
		slices.SortStableFunc(sorted, func(a, b Account) int {
			return b.AnnualInterestRate.Cmp(a.AnnualInterestRate)
		})
	case StrategySnowball:
		slices.SortStableFunc(sorted, func(a, b Account) int {
			return a.Balance.Cmp(b.Balance)
		})
	}

	return Ordering{strategy: strategy, accounts: sorted}, nil
}

func (o Ordering) Strategy() Strategy {
	return o.strategy
}

func (o Ordering) Len() int {
	return len(o.accounts)
}

// IDs returns the account ids in priority order.
func (o Ordering) IDs() []string {
	ids := make([]string, len(o.accounts))
	for i, a := range o.accounts {
		ids[i] = a.ID
	}
	return ids
}
