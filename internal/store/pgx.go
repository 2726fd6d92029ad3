package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/remixgram/pkg/logger"
)

// SqBuilder is the shared statement builder for the snapshot queries.
var SqBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var ErrBadQuery = errors.New("error building query")

// Pgx persists each collection as one jsonb row in the snapshots table.
type Pgx struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pool *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pool:   pool,
		logger: logger.WithComponent("SnapshotStore"),
	}
}

var _ Store = (*Pgx)(nil)

func (s *Pgx) Load(ctx context.Context, collection string) ([]byte, error) {
	query, args, err := SqBuilder.
		Select("data").
		From("snapshots").
		Where(sq.Eq{"collection": collection}).
		ToSql()
	if err != nil {
		return nil, ErrBadQuery
	}

	var data []byte
	err = s.pool.QueryRow(ctx, query, args...).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAbsent
		}
		return nil, fmt.Errorf("failed to load snapshot %q: %w", collection, err)
	}

	return data, nil
}

func (s *Pgx) Save(ctx context.Context, collection string, snapshot []byte) error {
	query, args, err := SqBuilder.
		Insert("snapshots").
		Columns("collection", "data", "updated_at").
		Values(collection, snapshot, time.Now()).
		Suffix("ON CONFLICT (collection) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return ErrBadQuery
	}

	_, err = s.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", collection, err)
	}
	return nil
}

// ResetAll deletes every collection row in one transaction so readers never
// observe a partial reset.
func (s *Pgx) ResetAll(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reset: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}
