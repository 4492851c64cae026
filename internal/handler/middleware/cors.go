package middleware

import (
	"log/slog"
	"slices"

	"cowork-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware serves the customer and vendor frontends. A "*" origin opens
// the public catalogue routes to any site, in which case cookies are never sent.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  slices.Concat(cfg.AllowHeaders, []string{"X-Request-ID"}),
		ExposeHeaders: slices.Concat(cfg.ExposeHeaders, []string{"X-Request-ID", "Retry-After"}),
		MaxAge:        cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		corsCfg.AllowCredentials = cfg.AllowCredentials
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
