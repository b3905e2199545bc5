package actions

import (
	"context"

	"github.com/carson-networks/payoff-server/internal/payoff"
	"github.com/carson-networks/payoff-server/internal/service"
)

type payoffComparer interface {
	Compare(ctx context.Context, req service.PayoffRequest) (*payoff.Comparison, error)
}

// ComparePayoff runs both strategies. Comparison is set on success.
type ComparePayoff struct {
	Service payoffComparer
	Request service.PayoffRequest

	Comparison *payoff.Comparison
}

func (c *ComparePayoff) Perform(ctx context.Context) error {
	comparison, err := c.Service.Compare(ctx, c.Request)
	if err != nil {
		return err
	}

	c.Comparison = comparison
	return nil
}
