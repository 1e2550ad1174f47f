package components

import (
	"tembea/internal/handler"
	"tembea/internal/handler/api"
	"tembea/internal/handler/middleware"
	"tembea/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewWebhookHandler,
		api.NewAdminHandler,
		api.NewPayoutHandler,
		middleware.NewAuthMiddleware,
		NewRequestLogger,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewHandlers(
	booking *api.BookingHandler,
	availability *api.AvailabilityHandler,
	webhook *api.WebhookHandler,
	admin *api.AdminHandler,
	payout *api.PayoutHandler,
) handler.Handlers {
	return handler.Handlers{
		Booking:      booking,
		Availability: availability,
		Webhook:      webhook,
		Admin:        admin,
		Payout:       payout,
	}
}
