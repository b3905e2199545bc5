// Package payoff simulates month-by-month repayment of revolving credit
// balances under a fixed monthly budget and a prioritization strategy.
//
// Every amount is a decimal.Decimal. Monthly interest is balance times
// annual_rate / 100 / 12, carried at decimal.DivisionPrecision places and never
// rounded to cents. Payments are capped at the balance, so a paid-off balance is
// exactly zero. Round only when presenting amounts.
package payoff

import (
	"github.com/shopspring/decimal"
)

// DefaultMaxMonths caps a run at 50 years.
const DefaultMaxMonths = 600

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// Options tunes a Simulator.
type Options struct {
	// MaxMonths bounds the number of simulated months. Zero or negative uses DefaultMaxMonths.
	MaxMonths int
}

// Simulator runs payoff simulations. The zero value is ready to use and safe
// for concurrent use since every run only touches its own working state.
type Simulator struct {
	opts Options
}

func NewSimulator(opts Options) *Simulator {
	return &Simulator{opts: opts}
}

func (s *Simulator) MaxMonths() int {
	if s == nil || s.opts.MaxMonths <= 0 {
		return DefaultMaxMonths
	}
	return s.opts.MaxMonths
}

// Simulate runs a payoff simulation with default options.
func Simulate(accounts []Account, strategy Strategy, budget decimal.Decimal) (*PayoffPlan, error) {
	var s Simulator
	return s.Simulate(accounts, strategy, budget)
}

// Simulate validates the budget, orders the accounts once and steps months
// until every balance is zero. No partial plan is returned on error.
func (s *Simulator) Simulate(accounts []Account, strategy Strategy, budget decimal.Decimal) (*PayoffPlan, error) {
	if err := ValidateBudget(accounts, budget); err != nil {
		return nil, err
	}

	order, err := Order(accounts, strategy)
	if err != nil {
		return nil, err
	}

	return s.run(order, budget)
}

// workingAccount carries the mutable balance and running totals of one account.
type workingAccount struct {
	Account
	monthlyRate  decimal.Decimal
	balance      decimal.Decimal
	interestPaid decimal.Decimal
	amountPaid   decimal.Decimal
	payoffMonth  int
}

// paymentAccumulator is one account's in-progress payment for the current month.
type paymentAccumulator struct {
	payment  decimal.Decimal
	interest decimal.Decimal
}

type stepper struct {
	budget   decimal.Decimal
	accounts []*workingAccount

	month         int
	interestPaid  decimal.Decimal
	amountPaid    decimal.Decimal
	monthInterest decimal.Decimal
}

func (s *Simulator) run(order Ordering, budget decimal.Decimal) (*PayoffPlan, error) {
	st := newStepper(order, budget)
	maxMonths := s.MaxMonths()

	var schedule []MonthEntry
	for st.outstanding() {
		if st.month >= maxMonths {
			return nil, &DidNotConvergeError{MaxMonths: maxMonths, RemainingDebt: st.remainingDebt()}
		}
		schedule = append(schedule, st.step())
	}

	return st.plan(order.Strategy(), schedule), nil
}

func newStepper(order Ordering, budget decimal.Decimal) *stepper {
	st := &stepper{
		budget:       budget,
		accounts:     make([]*workingAccount, 0, order.Len()),
		interestPaid: decimal.Zero,
		amountPaid:   decimal.Zero,
	}
	for _, a := range order.accounts {
		st.accounts = append(st.accounts, &workingAccount{
			Account:      a,
			monthlyRate:  monthlyRate(a.AnnualInterestRate),
			balance:      a.Balance,
			interestPaid: decimal.Zero,
			amountPaid:   decimal.Zero,
		})
	}
	return st
}

func (st *stepper) outstanding() bool {
	for _, a := range st.accounts {
		if a.balance.IsPositive() {
			return true
		}
	}
	return false
}

func (st *stepper) remainingDebt() decimal.Decimal {
	total := decimal.Zero
	for _, a := range st.accounts {
		total = total.Add(a.balance)
	}
	return total
}

// step advances one month: interest and minimums first, then the extra
// cascade in the same fixed order.
func (st *stepper) step() MonthEntry {
	st.month++
	st.monthInterest = decimal.Zero
	remaining := st.budget

	acc := make([]paymentAccumulator, len(st.accounts))
	for i, a := range st.accounts {
		acc[i] = paymentAccumulator{payment: decimal.Zero, interest: decimal.Zero}
		if !a.balance.IsPositive() {
			continue
		}

		interest := monthlyInterest(a.balance, a.monthlyRate)
		a.balance = a.balance.Add(interest)
		a.interestPaid = a.interestPaid.Add(interest)
		st.interestPaid = st.interestPaid.Add(interest)
		st.monthInterest = st.monthInterest.Add(interest)

		payment := decimal.Min(a.MinPayment, a.balance)
		st.pay(a, payment)
		remaining = remaining.Sub(payment)

		acc[i].payment = payment
		acc[i].interest = interest
	}

	for i, a := range st.accounts {
		if !remaining.IsPositive() {
			break
		}
		if !a.balance.IsPositive() {
			continue
		}

		extra := decimal.Min(remaining, a.balance)
		st.pay(a, extra)
		remaining = remaining.Sub(extra)
		acc[i].payment = acc[i].payment.Add(extra)
	}

	return st.freeze(acc, remaining)
}

func (st *stepper) pay(a *workingAccount, amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
	if a.balance.IsNegative() {
		a.balance = decimal.Zero
	}
	a.amountPaid = a.amountPaid.Add(amount)
	st.amountPaid = st.amountPaid.Add(amount)
	if a.payoffMonth == 0 && !a.balance.IsPositive() {
		a.payoffMonth = st.month
	}
}

func (st *stepper) freeze(acc []paymentAccumulator, remaining decimal.Decimal) MonthEntry {
	payments := make([]AccountPayment, len(st.accounts))
	for i, a := range st.accounts {
		payments[i] = AccountPayment{
			AccountID:        a.ID,
			AccountName:      a.Name,
			Payment:          acc[i].payment,
			InterestPaid:     acc[i].interest,
			RemainingBalance: a.balance,
		}
	}

	return MonthEntry{
		Month:                  st.month,
		Payments:               payments,
		TotalPayment:           st.budget.Sub(remaining),
		TotalInterest:          st.monthInterest,
		RemainingDebt:          st.remainingDebt(),
		CumulativeInterestPaid: st.interestPaid,
		CumulativeAmountPaid:   st.amountPaid,
	}
}

func (st *stepper) plan(strategy Strategy, schedule []MonthEntry) *PayoffPlan {
	if schedule == nil {
		schedule = []MonthEntry{}
	}

	summaries := make([]AccountSummary, len(st.accounts))
	for i, a := range st.accounts {
		summaries[i] = AccountSummary{
			AccountID:       a.ID,
			AccountName:     a.Name,
			StartingBalance: a.Balance,
			InterestPaid:    a.interestPaid,
			AmountPaid:      a.amountPaid,
			PayoffMonth:     a.payoffMonth,
		}
	}

	return &PayoffPlan{
		Strategy:          strategy,
		MonthlyBudget:     st.budget,
		TotalMonths:       st.month,
		TotalInterestPaid: st.interestPaid,
		TotalAmountPaid:   st.amountPaid,
		Schedule:          schedule,
		Accounts:          summaries,
	}
}

// monthlyRate converts an annual percentage into a monthly fraction.
func monthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(hundred).Div(monthsInYear)
}

// monthlyInterest is balance * rate. The product is held to DivisionPrecision
// places so digits do not pile up over hundreds of months.
func monthlyInterest(balance, rate decimal.Decimal) decimal.Decimal {
	return balance.Mul(rate).Round(int32(decimal.DivisionPrecision))
}
