package plan

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/payoff-server/internal/operator/actions"
	"github.com/carson-networks/payoff-server/internal/payoff"
	"github.com/carson-networks/payoff-server/internal/service"
)

const maxAccounts = 50

// AccountInput is the request model for one credit account.
type AccountInput struct {
	ID           string `json:"id,omitempty" maxLength:"64" doc:"Account identifier, generated when omitted"`
	Name         string `json:"name" minLength:"1" maxLength:"128" doc:"Display name"`
	Balance      string `json:"balance" doc:"Current balance as a positive decimal (e.g. '1234.56')"`
	InterestRate string `json:"interestRate" doc:"Annual interest rate in percent (e.g. '19.99')"`
	MinPayment   string `json:"minPayment" doc:"Fixed minimum monthly payment as a positive decimal"`
}

// AccountPayment is the API response model for one account in one month.
type AccountPayment struct {
	AccountID        string `json:"accountId" doc:"Account identifier"`
	AccountName      string `json:"accountName" doc:"Account name"`
	Payment          string `json:"payment" doc:"Amount paid this month"`
	InterestPaid     string `json:"interestPaid" doc:"Interest accrued this month"`
	RemainingBalance string `json:"remainingBalance" doc:"Balance after this month's payments"`
}

// MonthEntry is the API response model for one simulated month.
type MonthEntry struct {
	Month         int              `json:"month" doc:"1-based month index"`
	Payments      []AccountPayment `json:"payments" doc:"Per-account payments in strategy order"`
	TotalPayment  string           `json:"totalPayment" doc:"Total paid this month"`
	TotalInterest string           `json:"totalInterest" doc:"Interest accrued this month across all accounts"`
	RemainingDebt string           `json:"remainingDebt" doc:"Total debt after this month"`
}

// AccountSummary is the API response model for one account over the whole plan.
type AccountSummary struct {
	AccountID       string `json:"accountId" doc:"Account identifier"`
	AccountName     string `json:"accountName" doc:"Account name"`
	StartingBalance string `json:"startingBalance" doc:"Balance before the first month"`
	InterestPaid    string `json:"interestPaid" doc:"Total interest accrued"`
	AmountPaid      string `json:"amountPaid" doc:"Total amount paid"`
	PayoffMonth     int    `json:"payoffMonth" doc:"Month the account reached zero"`
}

// PayoffPlan is the API response model for a payoff plan.
type PayoffPlan struct {
	Strategy          string           `json:"strategy" doc:"Strategy used to order accounts"`
	TotalMonths       int              `json:"totalMonths" doc:"Months until every balance is zero"`
	TotalInterestPaid string           `json:"totalInterestPaid" doc:"Interest paid over the plan"`
	TotalAmountPaid   string           `json:"totalAmountPaid" doc:"Amount paid over the plan"`
	Accounts          []AccountSummary `json:"accounts" doc:"Per-account totals in strategy order"`
	Schedule          []MonthEntry     `json:"schedule" doc:"One entry per month"`
}

// actionProcessor runs actions on the operator worker pool.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func parseAccounts(inputs []AccountInput) ([]payoff.Account, error) {
	if len(inputs) > maxAccounts {
		return nil, huma.NewError(http.StatusBadRequest, "too many accounts")
	}

	seen := make(map[string]bool, len(inputs))
	accounts := make([]payoff.Account, len(inputs))
	for i, in := range inputs {
		id := in.ID
		if id == "" {
			id = uuid.Must(uuid.NewV4()).String()
		}
		if seen[id] {
			return nil, huma.NewError(http.StatusBadRequest, "duplicate account id "+id)
		}
		seen[id] = true

		balance, err := parsePositive("balance", in.Balance)
		if err != nil {
			return nil, err
		}
		rate, err := parseNonNegative("interestRate", in.InterestRate)
		if err != nil {
			return nil, err
		}
		minPayment, err := parsePositive("minPayment", in.MinPayment)
		if err != nil {
			return nil, err
		}

		accounts[i] = payoff.Account{
			ID:                 id,
			Name:               in.Name,
			Balance:            balance,
			AnnualInterestRate: rate,
			MinPayment:         minPayment,
		}
	}
	return accounts, nil
}

func parsePositive(field, value string) (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	if !parsed.IsPositive() {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, field+" must be greater than 0")
	}
	return parsed, nil
}

func parseNonNegative(field, value string) (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	if parsed.IsNegative() {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, field+" must not be negative")
	}
	return parsed, nil
}

func parseRequest(inputs []AccountInput, strategy, monthlyBudget string) (service.PayoffRequest, error) {
	accounts, err := parseAccounts(inputs)
	if err != nil {
		return service.PayoffRequest{}, err
	}
	budget, err := parsePositive("monthlyBudget", monthlyBudget)
	if err != nil {
		return service.PayoffRequest{}, err
	}

	req := service.PayoffRequest{Accounts: accounts, MonthlyBudget: budget}
	if strategy != "" {
		req.Strategy, err = payoff.ParseStrategy(strategy)
		if err != nil {
			return service.PayoffRequest{}, huma.NewError(http.StatusUnprocessableEntity, "invalid strategy", err)
		}
	}
	return req, nil
}

// payoffError maps simulator errors onto HTTP errors.
func payoffError(err error) error {
	var budgetErr *payoff.InsufficientBudgetError
	switch {
	case errors.As(err, &budgetErr):
		return huma.NewError(http.StatusBadRequest, budgetErr.Error())
	case errors.Is(err, payoff.ErrInvalidStrategy):
		return huma.NewError(http.StatusUnprocessableEntity, "invalid strategy", err)
	case errors.Is(err, payoff.ErrDidNotConverge):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusServiceUnavailable, "payoff calculation canceled", err)
	}
	return huma.NewError(http.StatusInternalServerError, "failed to calculate payoff", err)
}

// money renders an amount for API clients. The simulator keeps full precision.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toPayoffPlan(plan *payoff.PayoffPlan) PayoffPlan {
	resp := PayoffPlan{
		Strategy:          string(plan.Strategy),
		TotalMonths:       plan.TotalMonths,
		TotalInterestPaid: money(plan.TotalInterestPaid),
		TotalAmountPaid:   money(plan.TotalAmountPaid),
		Accounts:          make([]AccountSummary, len(plan.Accounts)),
		Schedule:          make([]MonthEntry, len(plan.Schedule)),
	}

	for i, a := range plan.Accounts {
		resp.Accounts[i] = AccountSummary{
			AccountID:       a.AccountID,
			AccountName:     a.AccountName,
			StartingBalance: money(a.StartingBalance),
			InterestPaid:    money(a.InterestPaid),
			AmountPaid:      money(a.AmountPaid),
			PayoffMonth:     a.PayoffMonth,
		}
	}

	for i, entry := range plan.Schedule {
		month := MonthEntry{
			Month:         entry.Month,
			Payments:      make([]AccountPayment, len(entry.Payments)),
			TotalPayment:  money(entry.TotalPayment),
			TotalInterest: money(entry.TotalInterest),
			RemainingDebt: money(entry.RemainingDebt),
		}
		for j, p := range entry.Payments {
			month.Payments[j] = AccountPayment{
				AccountID:        p.AccountID,
				AccountName:      p.AccountName,
				Payment:          money(p.Payment),
				InterestPaid:     money(p.InterestPaid),
				RemainingBalance: money(p.RemainingBalance),
			}
		}
		resp.Schedule[i] = month
	}

	return resp
}
