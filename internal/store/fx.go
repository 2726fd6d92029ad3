package store

import (
	"go.uber.org/fx"
)

var Module = fx.Module("snapshot_store",
	fx.Provide(
		NewPool,
		fx.Annotate(
			NewPgx,
			fx.As(new(Store)),
		),
		NewWriter,
	),
)
