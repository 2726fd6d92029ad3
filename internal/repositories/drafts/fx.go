package drafts

import (
	"go.uber.org/fx"
)

var Module = fx.Module("drafts_repository",
	fx.Provide(
		fx.Annotate(
			NewSnapshot,
			fx.As(new(Repository)),
		),
	),
)
