package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/payoff-server/internal/logging"
	"github.com/carson-networks/payoff-server/internal/operator/actions"
	"github.com/carson-networks/payoff-server/internal/payoff"
	"github.com/carson-networks/payoff-server/internal/service"
)

type funcAction func(ctx context.Context) error

func (f funcAction) Perform(ctx context.Context) error {
	return f(ctx)
}

func newStartedDelegator(t *testing.T, workers int) *OperatorDelegator {
	t.Helper()
	d := NewOperatorDelegator(workers, 10)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_ReturnsActionError(t *testing.T) {
	d := newStartedDelegator(t, 1)

	err := d.Process(context.Background(), funcAction(func(context.Context) error {
		return errors.New("action failed")
	}))

	assert.EqualError(t, err, "action failed")
}

func TestProcess_RecoversPanics(t *testing.T) {
	d := newStartedDelegator(t, 1)

	err := d.Process(context.Background(), funcAction(func(context.Context) error {
		panic("bad input")
	}))
	assert.ErrorContains(t, err, "bad input")

	err = d.Process(context.Background(), funcAction(func(context.Context) error { return nil }))
	assert.NoError(t, err, "worker survives a panic")
}

func TestProcess_BoundsConcurrency(t *testing.T) {
	d := newStartedDelegator(t, 2)

	var running, peak int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = d.Process(context.Background(), funcAction(func(context.Context) error {
				now := atomic.AddInt32(&running, 1)
				for {
					old := atomic.LoadInt32(&peak)
					if now <= old || atomic.CompareAndSwapInt32(&peak, old, now) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil
			}))
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
	assert.Equal(t, 2, d.Workers())
}

func TestProcess_ContextCanceledWhileWaiting(t *testing.T) {
	d := newStartedDelegator(t, 1)
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	go func() {
		_ = d.Process(context.Background(), funcAction(func(context.Context) error {
			close(started)
			<-release
			return nil
		}))
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := d.Process(ctx, funcAction(func(context.Context) error { return nil }))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(1, 1)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), funcAction(func(context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrStopped)
}

func TestProcess_CalculatePayoffAction(t *testing.T) {
	d := newStartedDelegator(t, 1)
	svc := service.NewPayoffService(payoff.NewSimulator(payoff.Options{}), nil, logging.SetupLogging())

	action := &actions.CalculatePayoff{
		Service: svc,
		Request: service.PayoffRequest{
			Accounts: []payoff.Account{{
				ID:                 "card",
				Name:               "Card",
				Balance:            decimal.RequireFromString("1200"),
				AnnualInterestRate: decimal.Zero,
				MinPayment:         decimal.RequireFromString("100"),
			}},
			Strategy:      payoff.StrategyAvalanche,
			MonthlyBudget: decimal.RequireFromString("100"),
		},
	}

	require.NoError(t, d.Process(context.Background(), action))
	require.NotNil(t, action.Plan)
	assert.Equal(t, 12, action.Plan.TotalMonths)
}

func TestProcess_ComparePayoffActionError(t *testing.T) {
	d := newStartedDelegator(t, 1)
	svc := service.NewPayoffService(payoff.NewSimulator(payoff.Options{}), nil, logging.SetupLogging())

	action := &actions.ComparePayoff{
		Service: svc,
		Request: service.PayoffRequest{
			Accounts: []payoff.Account{{
				ID:                 "card",
				Balance:            decimal.RequireFromString("500"),
				AnnualInterestRate: decimal.RequireFromString("12"),
				MinPayment:         decimal.RequireFromString("40"),
			}},
			MonthlyBudget: decimal.RequireFromString("20"),
		},
	}

	err := d.Process(context.Background(), action)
	assert.ErrorIs(t, err, payoff.ErrInsufficientBudget)
	assert.Nil(t, action.Comparison)
}
