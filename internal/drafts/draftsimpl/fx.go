package draftsimpl

import (
	"github.com/orgball2608/remixgram/internal/drafts"
	"go.uber.org/fx"
)

var Module = fx.Module("drafts",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(drafts.Client)),
		),
	),
)
