package payoff

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientBudget = errors.New("monthly budget below total minimum payment")
	ErrInvalidStrategy    = errors.New("invalid strategy")
	ErrDidNotConverge     = errors.New("simulation did not converge")
)

// InsufficientBudgetError reports the budget needed to cover every minimum payment.
type InsufficientBudgetError struct {
	Required decimal.Decimal
	Budget   decimal.Decimal
}

func (e *InsufficientBudgetError) Error() string {
	return fmt.Sprintf("monthly payment must be at least %s", e.Required.String())
}

func (e *InsufficientBudgetError) Is(target error) bool {
	return target == ErrInsufficientBudget
}

// DidNotConvergeError is returned when balances are still outstanding after MaxMonths.
type DidNotConvergeError struct {
	MaxMonths     int
	RemainingDebt decimal.Decimal
}

func (e *DidNotConvergeError) Error() string {
	return fmt.Sprintf("debt not paid off within %d months, %s remaining", e.MaxMonths, e.RemainingDebt.String())
}

func (e *DidNotConvergeError) Is(target error) bool {
	return target == ErrDidNotConverge
}

func invalidStrategy(s string) error {
	return fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
}
