package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upCreateSnapshots, downCreateSnapshots)
}

func upCreateSnapshots(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE IF NOT EXISTS snapshots (
		collection TEXT PRIMARY KEY,
		data JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreateSnapshots(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE IF EXISTS snapshots;
	`)
	if err != nil {
		return err
	}
	return nil
}
