package payoff

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account is a revolving-credit balance fed into a simulation.
type Account struct {
	ID                 string
	Name               string
	Balance            decimal.Decimal
	AnnualInterestRate decimal.Decimal
	MinPayment         decimal.Decimal
}

// Strategy selects the priority order for extra payments.
type Strategy string

const (
	StrategyAvalanche Strategy = "avalanche" // highest rate first
	StrategySnowball  Strategy = "snowball"  // lowest balance first
)

// ParseStrategy maps a user supplied tag onto a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyAvalanche:
		return StrategyAvalanche, nil
	case StrategySnowball:
		return StrategySnowball, nil
	}
	return "", invalidStrategy(s)
}

func (s Strategy) valid() bool {
	return s == StrategyAvalanche || s == StrategySnowball
}
