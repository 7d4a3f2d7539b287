package health

import (
	"context"
	"fmt"

	"github.com/piresc/wellnest/internal/pkg/database"
	"github.com/piresc/wellnest/internal/pkg/nats"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// NewPostgresHealthChecker pings PostgreSQL
func NewPostgresHealthChecker(client *database.PostgresClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		return client.Ping(ctx)
	})
}

// NewRedisHealthChecker pings Redis
func NewRedisHealthChecker(client *database.RedisClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		return client.Ping(ctx)
	})
}

// NewNATSHealthChecker reports whether the NATS connection is up
func NewNATSHealthChecker(client *nats.Client) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		if !client.IsConnected() {
			return fmt.Errorf("NATS not connected")
		}
		return nil
	})
}

// Pinger is anything that can report reachability, such as the NSQ producer
type Pinger interface {
	Ping() error
}

// NewPingHealthChecker adapts a Pinger. A nil pinger is reported healthy,
// for optional dependencies that are not configured.
func NewPingHealthChecker(p Pinger) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if p == nil {
			return nil
		}
		return p.Ping()
	})
}
