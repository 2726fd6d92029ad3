package fx

import (
	"github.com/orgball2608/remixgram/internal/repositories/drafts"
	"github.com/orgball2608/remixgram/internal/repositories/posts"
	"github.com/orgball2608/remixgram/internal/repositories/session"
	"github.com/orgball2608/remixgram/internal/repositories/users"
	"go.uber.org/fx"
)

var Module = fx.Options(
	posts.Module,
	users.Module,
	drafts.Module,
	session.Module,
)
