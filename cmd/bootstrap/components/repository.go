package components

import (
	"oasis-backend/internal/infra/pricing"
	"oasis-backend/internal/infra/readstore"
	repo_impl "oasis-backend/internal/infra/repository"
	"oasis-backend/internal/usecase/commands"
	"oasis-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewTabRepository,
			fx.As(new(commands.TabRepository)),
		),
		fx.Annotate(
			repo_impl.NewWalletRepository,
			fx.As(new(commands.WalletRepository)),
		),
		fx.Annotate(
			pricing.NewMenuPricing,
			fx.As(new(commands.PricingOracle)),
		),
		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewTabReadStore,
			fx.As(new(queries.TabReadStore)),
		),
		fx.Annotate(
			readstore.NewWalletReadStore,
			fx.As(new(queries.WalletReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)
