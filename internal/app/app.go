package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"github.com/orgball2608/remixgram/internal/composer"
	"github.com/orgball2608/remixgram/internal/composer/composerimpl"
	"github.com/orgball2608/remixgram/internal/drafts"
	"github.com/orgball2608/remixgram/internal/drafts/draftsimpl"
	"github.com/orgball2608/remixgram/internal/generator"
	"github.com/orgball2608/remixgram/internal/generator/generatorimpl"
	"github.com/orgball2608/remixgram/internal/lineage"
	"github.com/orgball2608/remixgram/internal/lineage/lineageimpl"
	_ "github.com/orgball2608/remixgram/internal/migrations"
	"github.com/orgball2608/remixgram/internal/ratelimit"
	"github.com/orgball2608/remixgram/internal/remixer"
	"github.com/orgball2608/remixgram/internal/remixer/remixerimpl"
	repositories "github.com/orgball2608/remixgram/internal/repositories/fx"
	"github.com/orgball2608/remixgram/internal/session"
	"github.com/orgball2608/remixgram/internal/store"
	"github.com/orgball2608/remixgram/internal/users"
	"github.com/orgball2608/remixgram/internal/users/usersimpl"
	"github.com/orgball2608/remixgram/pkg/config"
	"github.com/orgball2608/remixgram/pkg/logger"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var App = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			generatorimpl.New,
			fx.As(new(generator.Client)),
		),
		func(cfg *config.Config) ratelimit.Limiter {
			return ratelimit.NewInMemoryLimiter(cfg.Generator.PerMinute, time.Minute, cfg.Generator.BurstLimit)
		},
	),
	store.Module,
	repositories.Module,
	usersimpl.Module,
	session.Module,
	lineageimpl.Module,
	draftsimpl.Module,
	remixerimpl.Module,
	composerimpl.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func migrate(c *config.Config) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", c.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	return goose.Up(db, filepath.Join(wd, "internal", "migrations"))
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, usersClient users.Client,
	sess *session.Manager, lineageClient lineage.Client, draftsClient drafts.Client,
	_ remixer.Client, _ composer.Client, writer *store.Writer) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, cfg)

			// Users must exist before the session pointer can be
			// validated; posts and drafts are independent of both.
			ctx := context.Background()
			if err := usersClient.Hydrate(ctx); err != nil {
				log.Error("Failed to hydrate users", "error", err)
			}
			if err := sess.Hydrate(ctx); err != nil {
				log.Error("Failed to hydrate session", "error", err)
			}
			if err := lineageClient.Hydrate(ctx); err != nil {
				log.Error("Failed to hydrate posts", "error", err)
			}
			if err := draftsClient.Hydrate(ctx); err != nil {
				log.Error("Failed to hydrate drafts", "error", err)
			}

			if err := draftsClient.ScheduleCleanup(ctx); err != nil {
				log.Error("Failed to schedule draft cleanup", "error", err)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			// Let queued snapshot saves land before the pool closes.
			writer.Flush()
			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
