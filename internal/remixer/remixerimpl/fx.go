package remixerimpl

import (
	"github.com/orgball2608/remixgram/internal/remixer"
	"go.uber.org/fx"
)

var Module = fx.Module("remixer",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(remixer.Client)),
		),
	),
)
