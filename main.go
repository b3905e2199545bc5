package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/payoff-server/api"
	"github.com/carson-networks/payoff-server/internal/cache"
	"github.com/carson-networks/payoff-server/internal/config"
	"github.com/carson-networks/payoff-server/internal/logging"
	"github.com/carson-networks/payoff-server/internal/operator"
	"github.com/carson-networks/payoff-server/internal/payoff"
	"github.com/carson-networks/payoff-server/internal/service"
)

const operatorQueueSize = 1000

func main() {
	logger := logging.SetupLogging()
	logger.Info("payoff-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	if err = logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Fatal("logging.SetLevel")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	planCache := newPlanCache(ctx, logger, envConfig)
	simulator := payoff.NewSimulator(payoff.Options{MaxMonths: envConfig.MaxMonths})
	svc := service.NewService(simulator, planCache, logger)

	op := operator.NewOperatorDelegator(envConfig.OperatorWorkers, operatorQueueSize)
	op.Start()
	defer op.Stop()

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.Port,
		Service:  svc,
		Operator: op,
	}
	if err = httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}
}

func newPlanCache(ctx context.Context, logger *logrus.Logger, env *config.Config) cache.PlanCache {
	if env.RedisAddress == "" {
		logger.Info("plan cache: in memory")
		return cache.NewMemoryCache(env.CacheTTL)
	}

	redisCache := cache.NewRedisCache(env.RedisAddress, env.RedisPassword, env.CacheTTL)
	if err := redisCache.Ping(ctx); err != nil {
		logger.WithError(err).WithField("redisAddress", env.RedisAddress).
			Warn("plan cache: redis unreachable, requests will miss until it recovers")
	} else {
		logger.WithField("redisAddress", env.RedisAddress).Info("plan cache: redis")
	}
	return redisCache
}
