// Package cli loads payoff inputs from TOML files and renders plans for the terminal.
package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/payoff-server/internal/payoff"
)

// Amount is a decimal that decodes from a TOML string, integer or float.
type Amount struct {
	decimal.Decimal
	Set bool
}

func (a *Amount) UnmarshalTOML(value interface{}) error {
	var err error
	switch v := value.(type) {
	case string:
		a.Decimal, err = decimal.NewFromString(strings.TrimSpace(v))
	case int64:
		a.Decimal = decimal.NewFromInt(v)
	case float64:
		a.Decimal, err = decimal.NewFromString(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		err = fmt.Errorf("unsupported amount type %T", value)
	}
	if err != nil {
		return err
	}
	a.Set = true
	return nil
}

// FileAccount is one [[account]] table.
type FileAccount struct {
	ID           string `toml:"id"`
	Name         string `toml:"name"`
	Balance      Amount `toml:"balance"`
	InterestRate Amount `toml:"interest_rate"`
	MinPayment   Amount `toml:"min_payment"`
}

// File is the payoffctl input file.
type File struct {
	MonthlyBudget Amount        `toml:"monthly_budget"`
	Strategy      string        `toml:"strategy"`
	Accounts      []FileAccount `toml:"account"`
}

// LoadFile decodes path. Unknown keys are rejected so typos do not silently drop accounts.
func LoadFile(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("reading %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return &f, nil
}

// PayoffAccounts validates the file's accounts. Missing ids become 1-based positions.
func (f *File) PayoffAccounts() ([]payoff.Account, error) {
	if len(f.Accounts) == 0 {
		return nil, errors.New("no [[account]] entries")
	}

	seen := make(map[string]bool, len(f.Accounts))
	accounts := make([]payoff.Account, len(f.Accounts))
	for i, a := range f.Accounts {
		id := a.ID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		if seen[id] {
			return nil, fmt.Errorf("account %d: duplicate id %q", i+1, id)
		}
		seen[id] = true

		name := a.Name
		if name == "" {
			name = "Account " + id
		}

		switch {
		case !a.Balance.Set || !a.Balance.IsPositive():
			return nil, fmt.Errorf("account %q: balance must be greater than 0", name)
		case !a.InterestRate.Set || a.InterestRate.IsNegative():
			return nil, fmt.Errorf("account %q: interest_rate must be 0 or more", name)
		case !a.MinPayment.Set || !a.MinPayment.IsPositive():
			return nil, fmt.Errorf("account %q: min_payment must be greater than 0", name)
		}

		accounts[i] = payoff.Account{
			ID:                 id,
			Name:               name,
			Balance:            a.Balance.Decimal,
			AnnualInterestRate: a.InterestRate.Decimal,
			MinPayment:         a.MinPayment.Decimal,
		}
	}
	return accounts, nil
}
