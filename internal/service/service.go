package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/payoff-server/internal/cache"
	"github.com/carson-networks/payoff-server/internal/payoff"
)

// Service holds all business logic services.
type Service struct {
	Payoff *PayoffService
}

// NewService creates a new Service around the given simulator and plan cache.
func NewService(simulator *payoff.Simulator, planCache cache.PlanCache, logger *logrus.Logger) *Service {
	return &Service{
		Payoff: NewPayoffService(simulator, planCache, logger),
	}
}
