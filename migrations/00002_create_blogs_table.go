package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateBlogsTable, downCreateBlogsTable)
}

func upCreateBlogsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE blogs (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  title TEXT NOT NULL,
	  slug TEXT UNIQUE NOT NULL,
	  excerpt TEXT NOT NULL DEFAULT '',
	  content JSONB NOT NULL DEFAULT '[]'::jsonb,
	  image TEXT,
	  author TEXT NOT NULL,
	  author_bio TEXT,
	  author_image TEXT,
	  published_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  tags JSONB NOT NULL DEFAULT '[]'::jsonb,
	  status TEXT NOT NULL DEFAULT 'draft',
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE INDEX idx_blogs_status_published_at ON blogs(status, published_at DESC);
	CREATE INDEX idx_blogs_tags ON blogs USING GIN (tags);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateBlogsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS blogs;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
