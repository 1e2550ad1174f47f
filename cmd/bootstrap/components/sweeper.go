package components

import (
	"context"

	"tembea/internal/pkg/clock"
	"tembea/internal/pkg/config"
	"tembea/internal/sweeper"
	"tembea/internal/usecase/commands"
	"tembea/internal/usecase/shared"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(NewSweeper),
	fx.Invoke(registerSweeper),
)

func NewSweeper(uow shared.UnitOfWork, reconcile commands.ReconcileCommands, cfg config.Config, clk clock.Clock) *sweeper.Sweeper {
	return sweeper.New(uow, reconcile, cfg.Sweep, clk)
}

func registerSweeper(lc fx.Lifecycle, s *sweeper.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
