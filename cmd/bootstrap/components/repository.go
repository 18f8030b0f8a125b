package components

import (
	repo_impl "storefront-api/internal/infra/repository"
	"storefront-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repo_impl.NewPurchaseRepository,
			fx.As(new(commands.PurchaseRepository)),
		),
		fx.Annotate(
			repo_impl.NewGiftCardRepository,
			fx.As(new(commands.GiftCardRepository)),
		),
		fx.Annotate(
			repo_impl.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
		fx.Annotate(
			repo_impl.NewCheckoutAttemptRepository,
			fx.As(new(commands.CheckoutAttemptRepository)),
		),
	),
)
