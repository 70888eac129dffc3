package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateJobApplicationsTable, downCreateJobApplicationsTable)
}

func upCreateJobApplicationsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE job_applications (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  first_name TEXT NOT NULL,
	  last_name TEXT NOT NULL,
	  email TEXT NOT NULL,
	  phone TEXT NOT NULL,
	  address TEXT NOT NULL DEFAULT '',
	  city TEXT NOT NULL DEFAULT '',
	  state TEXT NOT NULL DEFAULT '',
	  country TEXT NOT NULL DEFAULT '',
	  qualification TEXT NOT NULL DEFAULT '',
	  experience_years TEXT NOT NULL DEFAULT '',
	  current_company TEXT,
	  selected_job_id TEXT REFERENCES job_openings(job_id) ON DELETE SET NULL,
	  cv_file_name TEXT,
	  cv_content TEXT,
	  cv_size BIGINT,
	  status TEXT NOT NULL DEFAULT 'Pending',
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE UNIQUE INDEX uq_job_applications_email_job
	  ON job_applications(lower(email), selected_job_id)
	  WHERE selected_job_id IS NOT NULL;

	CREATE INDEX idx_job_applications_status ON job_applications(status);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateJobApplicationsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS job_applications;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
