package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/hypermart-pos/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// Pinger is any upstream that can answer a cheap liveness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Endpoints struct {
	Backend Pinger
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:    "billing-backend",
				Timeout: 5 * time.Second,
				// the till can still show a cached catalog while the backend is down
				SkipOnErr: true,
				Check:     BackendCheck(endpoints.Backend),
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func BackendCheck(backend Pinger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if backend == nil {
			return fmt.Errorf("billing backend client is not initialized")
		}

		if err := backend.Ping(ctx); err != nil {
			return fmt.Errorf("failed to reach billing backend: %w", err)
		}

		return nil
	}
}
