package posts

import (
	"go.uber.org/fx"
)

var Module = fx.Module("posts_repository",
	fx.Provide(
		fx.Annotate(
			NewSnapshot,
			fx.As(new(Repository)),
		),
	),
)
