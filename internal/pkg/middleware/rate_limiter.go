package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/database"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Redis  *database.RedisClient
	Key    string        // route scope in the Redis key
	Limit  int           // Maximum number of requests
	Period time.Duration // Time period for the limit
}

// RateLimiterMiddleware counts requests per client IP in a fixed Redis window.
// When Redis is unavailable requests are let through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Limit <= 0 {
				return next(c)
			}

			ctx := c.Request().Context()
			key := fmt.Sprintf(constants.KeyRateLimit, config.Key, c.RealIP())
			client := config.Redis.GetClient()

			count, err := client.Incr(ctx, key).Result()
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable", logger.String("key", key), logger.Err(err))
				return next(c)
			}
			if count == 1 {
				// a counter without a TTL would never reset
				if err := client.Expire(ctx, key, config.Period).Err(); err != nil {
					logger.WarnCtx(ctx, "Rate limiter window not set", logger.String("key", key), logger.Err(err))
					client.Del(ctx, key)
					return next(c)
				}
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > config.Limit {
				ttl, err := client.TTL(ctx, key).Result()
				if err == nil && ttl > 0 {
					c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				}
				return utils.TooManyRequestsResponse(c, "")
			}

			return next(c)
		}
	}
}
