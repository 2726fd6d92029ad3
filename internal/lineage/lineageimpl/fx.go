package lineageimpl

import (
	"github.com/orgball2608/remixgram/internal/lineage"
	"go.uber.org/fx"
)

var Module = fx.Module("lineage",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(lineage.Client)),
		),
	),
)
