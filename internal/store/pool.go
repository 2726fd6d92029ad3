package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/remixgram/pkg/config"
	"github.com/orgball2608/remixgram/pkg/logger"
	"go.uber.org/fx"
)

type PoolOpts struct {
	fx.In
	LC fx.Lifecycle

	Logger logger.Logger
	Config *config.Config
}

func NewPool(opts PoolOpts) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(
		context.Background(),
		fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
			opts.Config.Postgres.Name, opts.Config.Postgres.User, opts.Config.Postgres.Pass,
			opts.Config.Postgres.Host, opts.Config.Postgres.Port, opts.Config.Postgres.SslMode,
		),
	)
	if err != nil {
		return nil, err
	}

	opts.LC.Append(
		fx.Hook{
			OnStop: func(ctx context.Context) error {
				opts.Logger.Info("Closing postgres pool")
				pool.Close()
				return nil
			},
		},
	)

	return pool, nil
}
