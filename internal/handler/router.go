package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tembea/internal/domain/identity"
	"tembea/internal/handler/api"
	"tembea/internal/handler/middleware"
	"tembea/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking      *api.BookingHandler
	Availability *api.AvailabilityHandler
	Webhook      *api.WebhookHandler
	Admin        *api.AdminHandler
	Payout       *api.PayoutHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, logger *middleware.Logger) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// The payment gateway cannot authenticate; replay protection and
		// checkout ID correlation stand in for auth on this route.
		addRoutes(apiGroup.Group("/payments"), []route{
			{Method: http.MethodPost, Path: "/mpesa/callback", Handler: handlers.Webhook.MpesaCallback},
		})

		addRoutes(apiGroup.Group("/items"), []route{
			{Method: http.MethodGet, Path: "/:id/availability", Handler: handlers.Availability.GetAvailability},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: handlers.Booking.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Booking.GetBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Booking.CancelBooking},
			})

			hostOnly := bookings.Group("")
			hostOnly.Use(authMiddleware.RequireRoleAtLeast(identity.RoleHost))
			addRoutes(hostOnly, []route{
				{Method: http.MethodPost, Path: "/manual", Handler: handlers.Booking.CreateManualBooking},
			})
		}

		host := apiGroup.Group("/host")
		host.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(identity.RoleHost))
		{
			addRoutes(host, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: handlers.Payout.GetHostBookings},
			})
		}

		payouts := apiGroup.Group("/payouts")
		payouts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payouts, []route{
				{Method: http.MethodGet, Path: "/summary", Handler: handlers.Payout.GetPayoutSummary, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(identity.RoleHost)}},
				{Method: http.MethodGet, Path: "/commissions", Handler: handlers.Payout.GetCommissions},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(identity.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/items/approve", Handler: handlers.Admin.ApproveItems},
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
