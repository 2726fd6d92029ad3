package users

import (
	"go.uber.org/fx"
)

var Module = fx.Module("users_repository",
	fx.Provide(
		fx.Annotate(
			NewSnapshot,
			fx.As(new(Repository)),
		),
	),
)
