package service

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/payoff-server/internal/cache"
	"github.com/carson-networks/payoff-server/internal/logging"
	"github.com/carson-networks/payoff-server/internal/payoff"
)

// PayoffService runs payoff simulations and caches their results.
type PayoffService struct {
	simulator *payoff.Simulator
	cache     cache.PlanCache
	logger    *logrus.Logger
}

// NewPayoffService creates a new PayoffService. A nil planCache disables caching.
func NewPayoffService(simulator *payoff.Simulator, planCache cache.PlanCache, logger *logrus.Logger) *PayoffService {
	return &PayoffService{
		simulator: simulator,
		cache:     planCache,
		logger:    logger,
	}
}

// Calculate returns the payoff plan for the request.
func (s *PayoffService) Calculate(ctx context.Context, req PayoffRequest) (*payoff.PayoffPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := req.cacheKey(planKeyPrefix, s.simulator.MaxMonths())
	plan := &payoff.PayoffPlan{}
	if s.loadCached(ctx, key, plan) {
		return plan, nil
	}

	plan, err := s.simulator.Simulate(req.Accounts, req.Strategy, req.MonthlyBudget)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"strategy":     req.Strategy,
			"accountCount": len(req.Accounts),
		}).Warn("PayoffService.Calculate.rejected")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"strategy":     plan.Strategy,
		"accountCount": len(req.Accounts),
		"totalMonths":  plan.TotalMonths,
	}).Debug("PayoffService.Calculate.simulated")

	s.storeCached(ctx, key, plan)
	return plan, nil
}

// Compare returns avalanche and snowball plans for the request. The request strategy is ignored.
func (s *PayoffService) Compare(ctx context.Context, req PayoffRequest) (*payoff.Comparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req.Strategy = ""
	key := req.cacheKey(compareKeyPrefix, s.simulator.MaxMonths())
	comparison := &payoff.Comparison{}
	if s.loadCached(ctx, key, comparison) {
		return comparison, nil
	}

	comparison, err := s.simulator.Compare(req.Accounts, req.MonthlyBudget)
	if err != nil {
		s.logger.WithError(err).WithField("accountCount", len(req.Accounts)).
			Warn("PayoffService.Compare.rejected")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"accountCount": len(req.Accounts),
		"recommended":  comparison.Recommended,
		"monthsSaved":  comparison.MonthsSaved,
	}).Debug("PayoffService.Compare.simulated")

	s.storeCached(ctx, key, comparison)
	return comparison, nil
}

// loadCached decodes a cached value into out. Cache errors count as misses.
func (s *PayoffService) loadCached(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}

	logData := logging.GetLogData(ctx)
	if logData != nil {
		defer logData.AddToExistingTiming("cacheMs")()
	}

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("PayoffService.cache.get")
		return false
	}
	if ok {
		if err = json.Unmarshal(raw, out); err != nil {
			s.logger.WithError(err).WithField("key", key).Warn("PayoffService.cache.decode")
			ok = false
		}
	}

	if logData != nil {
		logData.AddData("cacheHit", ok)
	}
	return ok
}

func (s *PayoffService) storeCached(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		defer logData.AddToExistingTiming("cacheMs")()
	}

	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("PayoffService.cache.encode")
		return
	}
	if err = s.cache.Set(ctx, key, raw); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("PayoffService.cache.set")
	}
}
