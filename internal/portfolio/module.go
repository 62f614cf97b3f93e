package portfolio

import "go.uber.org/fx"

// Module provides the portfolio resource dependencies
var Module = fx.Module("portfolio",
	fx.Provide(
		NewService,
		NewHandler,
	),
)
