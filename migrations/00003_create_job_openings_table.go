package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateJobOpeningsTable, downCreateJobOpeningsTable)
}

func upCreateJobOpeningsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE job_openings (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  job_id TEXT UNIQUE NOT NULL,
	  title TEXT NOT NULL,
	  company TEXT NOT NULL,
	  location TEXT NOT NULL,
	  type TEXT NOT NULL,
	  posted_date TEXT NOT NULL DEFAULT '',
	  description TEXT NOT NULL DEFAULT '',
	  overview TEXT NOT NULL DEFAULT '',
	  key_responsibilities JSONB NOT NULL DEFAULT '[]'::jsonb,
	  qualifications JSONB NOT NULL DEFAULT '[]'::jsonb,
	  remuneration TEXT NOT NULL DEFAULT '',
	  why_join_us TEXT NOT NULL DEFAULT '',
	  status TEXT NOT NULL DEFAULT 'Active',
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE INDEX idx_job_openings_status ON job_openings(status);
	CREATE INDEX idx_job_openings_type ON job_openings(type);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateJobOpeningsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS job_openings;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
