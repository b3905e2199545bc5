package actions

import (
	"context"

	"github.com/carson-networks/payoff-server/internal/payoff"
	"github.com/carson-networks/payoff-server/internal/service"
)

type payoffCalculator interface {
	Calculate(ctx context.Context, req service.PayoffRequest) (*payoff.PayoffPlan, error)
}

// CalculatePayoff runs a single-strategy simulation. Plan is set on success.
type CalculatePayoff struct {
	Service payoffCalculator
	Request service.PayoffRequest

	Plan *payoff.PayoffPlan
}

func (c *CalculatePayoff) Perform(ctx context.Context) error {
	plan, err := c.Service.Calculate(ctx, c.Request)
	if err != nil {
		return err
	}

	c.Plan = plan
	return nil
}
