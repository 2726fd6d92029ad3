package composerimpl

import (
	"github.com/orgball2608/remixgram/internal/composer"
	"go.uber.org/fx"
)

var Module = fx.Module("composer",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(composer.Client)),
		),
	),
)
