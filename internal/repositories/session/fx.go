package session

import (
	"go.uber.org/fx"
)

var Module = fx.Module("session_repository",
	fx.Provide(
		fx.Annotate(
			NewSnapshot,
			fx.As(new(Repository)),
		),
	),
)
