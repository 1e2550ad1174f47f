package components

import (
	"tembea/internal/infra"
	"tembea/internal/infra/cache"
	"tembea/internal/infra/readstore"
	"tembea/internal/infra/uow"
	"tembea/internal/usecase/queries"
	"tembea/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityViewRepo)),
		),
		fx.Annotate(
			readstore.NewPayoutReadStore,
			fx.As(new(queries.PayoutViewRepo)),
		),
		fx.Annotate(
			cache.NewAvailabilityCache,
			fx.As(new(queries.AvailabilityCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
