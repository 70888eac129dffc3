package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateProjectsTable, downCreateProjectsTable)
}

func upCreateProjectsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE projects (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  title TEXT NOT NULL,
	  location TEXT NOT NULL DEFAULT '',
	  beds TEXT NOT NULL DEFAULT '',
	  area TEXT NOT NULL DEFAULT '',
	  client TEXT NOT NULL DEFAULT '',
	  status TEXT NOT NULL DEFAULT 'Planning',
	  description TEXT NOT NULL DEFAULT '',
	  features JSONB NOT NULL DEFAULT '[]'::jsonb,
	  image TEXT,
	  image_name TEXT,
	  details JSONB NOT NULL DEFAULT '[]'::jsonb,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE INDEX idx_projects_status ON projects(status);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateProjectsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS projects;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
