package payoff

import "github.com/shopspring/decimal"

// Comparison holds an avalanche and a snowball plan for the same inputs.
type Comparison struct {
	Avalanche *PayoffPlan `json:"avalanche"`
	Snowball  *PayoffPlan `json:"snowball"`
	// InterestSaved is snowball interest minus avalanche interest, floored at zero.
	InterestSaved decimal.Decimal `json:"interestSaved"`
	// MonthsSaved is snowball months minus avalanche months and may be negative.
	MonthsSaved int      `json:"monthsSaved"`
	Recommended Strategy `json:"recommended"`
}

// Compare runs both strategies with default options.
func Compare(accounts []Account, budget decimal.Decimal) (*Comparison, error) {
	var s Simulator
	return s.Compare(accounts, budget)
}

// Compare runs both strategies and recommends the one paying less interest.
// Ties go to avalanche.
func (s *Simulator) Compare(accounts []Account, budget decimal.Decimal) (*Comparison, error) {
	avalanche, err := s.Simulate(accounts, StrategyAvalanche, budget)
	if err != nil {
		return nil, err
	}
	snowball, err := s.Simulate(accounts, StrategySnowball, budget)
	if err != nil {
		return nil, err
	}

	saved := snowball.TotalInterestPaid.Sub(avalanche.TotalInterestPaid)
	recommended := StrategyAvalanche
	if saved.IsNegative() {
		recommended = StrategySnowball
		saved = decimal.Zero
	}

	return &Comparison{
		Avalanche:     avalanche,
		Snowball:      snowball,
		InterestSaved: saved,
		MonthsSaved:   snowball.TotalMonths - avalanche.TotalMonths,
		Recommended:   recommended,
	}, nil
}
