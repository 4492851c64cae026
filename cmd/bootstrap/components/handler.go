package components

import (
	"cowork-booking/internal/handler"
	"cowork-booking/internal/handler/api"
	"cowork-booking/internal/handler/middleware"
	"cowork-booking/internal/infra/ratelimit"
	"cowork-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewOfferingHandler,
		api.NewApprovalHandler,
		api.NewStripeWebhookHandler,
		middleware.NewAuthMiddleware,
		NewRateLimitMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

// NewRateLimitMiddleware falls back to a no-op limiter when Redis is not configured.
func NewRateLimitMiddleware(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimitMiddleware {
	if cfg.Redis.Addr == "" {
		return middleware.NewRateLimitMiddleware(ratelimit.NoopLimiter{}, cfg.Redis.RateLimitWindow, true)
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.StopHook(rdb.Close))
	limiter := ratelimit.NewRedisLimiter(rdb, cfg.Redis.RateLimit, cfg.Redis.RateLimitWindow, "cowork:rl")
	return middleware.NewRateLimitMiddleware(limiter, cfg.Redis.RateLimitWindow, cfg.Redis.FailOpen)
}
