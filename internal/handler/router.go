package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/handler/api"
	"cowork-booking/internal/handler/middleware"
	"cowork-booking/internal/handler/validation"
	"cowork-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	Auth           *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimitMiddleware
	Bookings       *api.BookingHandler
	Offerings      *api.OfferingHandler
	Approvals      *api.ApprovalHandler
	StripeWebhooks *api.StripeWebhookHandler
}

func NewRouter(p RouterParams) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.POST("/webhooks/stripe", p.StripeWebhooks.Handle)

	staff := p.Auth.RequireRole(user.RoleVendor, user.RoleAdmin)
	admin := p.Auth.RequireRole(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		offerings := apiGroup.Group("/offerings")
		addRoutes(offerings, []route{
			{Method: http.MethodGet, Path: "/:id/quote", Handler: p.Offerings.Quote},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: p.Offerings.Availability},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(p.Auth.RequireAuth())
		{
			customer := p.Auth.RequireRole(user.RoleCustomer)
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Bookings.Create, Mw: []gin.HandlerFunc{customer, p.RateLimit.Limit("bookings")}},
				{Method: http.MethodGet, Path: "", Handler: p.Bookings.ListMine, Mw: []gin.HandlerFunc{customer}},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Bookings.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: p.Bookings.Cancel, Mw: []gin.HandlerFunc{customer}},
			})
		}

		vendor := apiGroup.Group("/vendor")
		vendor.Use(p.Auth.RequireAuth())
		{
			addRoutes(vendor, []route{
				{Method: http.MethodPost, Path: "/bookings/:id/check-in", Handler: p.Bookings.CheckIn, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodPost, Path: "/bookings/:id/no-show", Handler: p.Bookings.MarkNoShow, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodPut, Path: "/offerings/:id/availability", Handler: p.Offerings.SetAvailability, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodPost, Path: "/approval-requests", Handler: p.Approvals.Submit, Mw: []gin.HandlerFunc{p.Auth.RequireRole(user.RoleVendor)}},
				{Method: http.MethodGet, Path: "/approval-requests", Handler: p.Approvals.ListMine, Mw: []gin.HandlerFunc{p.Auth.RequireRole(user.RoleVendor)}},
			})
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(p.Auth.RequireAuth(), admin)
		{
			addRoutes(adminGroup, []route{
				{Method: http.MethodPost, Path: "/bookings/:id/confirm-payment", Handler: p.Bookings.ConfirmPayment},
				{Method: http.MethodGet, Path: "/approval-requests", Handler: p.Approvals.ListByStatus},
				{Method: http.MethodPost, Path: "/approval-requests/:id/approve", Handler: p.Approvals.Approve},
				{Method: http.MethodPost, Path: "/approval-requests/:id/reject", Handler: p.Approvals.Reject},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
