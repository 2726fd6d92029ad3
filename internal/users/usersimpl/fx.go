package usersimpl

import (
	"github.com/orgball2608/remixgram/internal/users"
	"go.uber.org/fx"
)

var Module = fx.Module("users",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(users.Client)),
		),
	),
)
