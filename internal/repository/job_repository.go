package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/atulv2861/seven-healer-backend/internal/model"
)

type JobFilter struct {
	Title    string
	Company  string
	Location string
	Type     string
	Status   string
}

type JobRepository interface {
	Create(ctx context.Context, job *model.JobOpening) error
	FindByJobID(ctx context.Context, jobID string) (*model.JobOpening, error)
	List(ctx context.Context, filter JobFilter, page, limit int) ([]model.JobOpening, int, error)
	Update(ctx context.Context, job *model.JobOpening) error
	Delete(ctx context.Context, jobID string) (bool, error)
	Stats(ctx context.Context) (*model.JobStats, error)
}

type postgresJobRepository struct {
	db *sqlx.DB
}

func NewPostgresJobRepository(db *sqlx.DB) JobRepository {
	return &postgresJobRepository{db: db}
}

func (r *postgresJobRepository) Create(ctx context.Context, job *model.JobOpening) error {
	query := `INSERT INTO job_openings (job_id, title, company, location, type, posted_date, description, overview,
			key_responsibilities, qualifications, remuneration, why_join_us, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowxContext(ctx, query,
		job.JobID, job.Title, job.Company, job.Location, job.Type, job.PostedDate,
		job.Description, job.Overview, job.KeyResponsibilities, job.Qualifications,
		job.Remuneration, job.WhyJoinUs, job.Status,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

func (r *postgresJobRepository) FindByJobID(ctx context.Context, jobID string) (*model.JobOpening, error) {
	var job model.JobOpening
	err := r.db.GetContext(ctx, &job, `SELECT * FROM job_openings WHERE job_id = $1`, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *postgresJobRepository) List(ctx context.Context, filter JobFilter, page, limit int) ([]model.JobOpening, int, error) {
	baseQuery := `SELECT * FROM job_openings WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM job_openings WHERE 1=1`

	args := []interface{}{}
	argID := 1
	appendCond := func(cond string, value interface{}) {
		baseQuery += cond
		countQuery += cond
		args = append(args, value)
		argID++
	}

	if filter.Status != "" {
		appendCond(fmt.Sprintf(" AND status = $%d", argID), filter.Status)
	}
	if filter.Type != "" {
		appendCond(fmt.Sprintf(" AND type = $%d", argID), filter.Type)
	}
	if filter.Title != "" {
		appendCond(fmt.Sprintf(" AND title ILIKE '%%' || $%d || '%%'", argID), filter.Title)
	}
	if filter.Company != "" {
		appendCond(fmt.Sprintf(" AND company ILIKE '%%' || $%d || '%%'", argID), filter.Company)
	}
	if filter.Location != "" {
		appendCond(fmt.Sprintf(" AND location ILIKE '%%' || $%d || '%%'", argID), filter.Location)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	baseQuery += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, limit, (page-1)*limit)

	var jobs []model.JobOpening
	if err := r.db.SelectContext(ctx, &jobs, baseQuery, args...); err != nil {
		return nil, 0, err
	}
	if jobs == nil {
		jobs = []model.JobOpening{}
	}

	return jobs, total, nil
}

func (r *postgresJobRepository) Update(ctx context.Context, job *model.JobOpening) error {
	query := `UPDATE job_openings
		SET job_id = $1, title = $2, company = $3, location = $4, type = $5, posted_date = $6,
		    description = $7, overview = $8, key_responsibilities = $9, qualifications = $10,
		    remuneration = $11, why_join_us = $12, status = $13, updated_at = now()
		WHERE id = $14
		RETURNING updated_at`
	return r.db.QueryRowxContext(ctx, query,
		job.JobID, job.Title, job.Company, job.Location, job.Type, job.PostedDate,
		job.Description, job.Overview, job.KeyResponsibilities, job.Qualifications,
		job.Remuneration, job.WhyJoinUs, job.Status, job.ID,
	).Scan(&job.UpdatedAt)
}

func (r *postgresJobRepository) Delete(ctx context.Context, jobID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM job_openings WHERE job_id = $1`, jobID)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *postgresJobRepository) Stats(ctx context.Context) (*model.JobStats, error) {
	stats := &model.JobStats{
		TypeBreakdown:    map[string]int{},
		CompanyBreakdown: map[string]int{},
	}

	if err := r.db.GetContext(ctx, &stats.TotalJobs, `SELECT COUNT(*) FROM job_openings`); err != nil {
		return nil, err
	}

	type bucket struct {
		Key   string `db:"key"`
		Count int    `db:"count"`
	}

	var byStatus []bucket
	if err := r.db.SelectContext(ctx, &byStatus, `SELECT status AS key, COUNT(*) AS count FROM job_openings GROUP BY status`); err != nil {
		return nil, err
	}
	for _, b := range byStatus {
		switch b.Key {
		case model.JobStatusActive:
			stats.ActiveJobs = b.Count
		case model.JobStatusInactive:
			stats.InactiveJobs = b.Count
		case model.JobStatusClosed:
			stats.ClosedJobs = b.Count
		case model.JobStatusDraft:
			stats.DraftJobs = b.Count
		}
	}

	var byType []bucket
	if err := r.db.SelectContext(ctx, &byType, `SELECT type AS key, COUNT(*) AS count FROM job_openings GROUP BY type`); err != nil {
		return nil, err
	}
	for _, b := range byType {
		stats.TypeBreakdown[b.Key] = b.Count
	}

	var byCompany []bucket
	if err := r.db.SelectContext(ctx, &byCompany, `SELECT company AS key, COUNT(*) AS count FROM job_openings GROUP BY company`); err != nil {
		return nil, err
	}
	for _, b := range byCompany {
		stats.CompanyBreakdown[b.Key] = b.Count
	}

	return stats, nil
}
