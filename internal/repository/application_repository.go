package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/atulv2861/seven-healer-backend/internal/model"
)

type ApplicationFilter struct {
	Status string
	JobID  string
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *model.JobApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.JobApplication, error)
	List(ctx context.Context, filter ApplicationFilter, page, limit int) ([]model.JobApplication, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.JobApplication, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type postgresApplicationRepository struct {
	db *sqlx.DB
}

func NewPostgresApplicationRepository(db *sqlx.DB) ApplicationRepository {
	return &postgresApplicationRepository{db: db}
}

func (r *postgresApplicationRepository) Create(ctx context.Context, app *model.JobApplication) error {
	query := `INSERT INTO job_applications (first_name, last_name, email, phone, address, city, state, country,
			qualification, experience_years, current_company, selected_job_id, cv_file_name, cv_content, cv_size, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowxContext(ctx, query,
		app.FirstName, app.LastName, app.Email, app.Phone, app.Address, app.City, app.State, app.Country,
		app.Qualification, app.ExperienceYears, app.CurrentCompany, app.SelectedJobID,
		app.CVFileName, app.CVContent, app.CVSize, app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
}

func (r *postgresApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.JobApplication, error) {
	var app model.JobApplication
	err := r.db.GetContext(ctx, &app, `SELECT * FROM job_applications WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *postgresApplicationRepository) List(ctx context.Context, filter ApplicationFilter, page, limit int) ([]model.JobApplication, int, error) {
	baseQuery := `SELECT * FROM job_applications WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM job_applications WHERE 1=1`

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
	if filter.JobID != "" {
		appendCond(fmt.Sprintf(" AND selected_job_id = $%d", argID), filter.JobID)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	baseQuery += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, limit, (page-1)*limit)

	var apps []model.JobApplication
	if err := r.db.SelectContext(ctx, &apps, baseQuery, args...); err != nil {
		return nil, 0, err
	}
	if apps == nil {
		apps = []model.JobApplication{}
	}

	return apps, total, nil
}

func (r *postgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.JobApplication, error) {
	var app model.JobApplication
	query := `UPDATE job_applications SET status = $1, updated_at = now() WHERE id = $2 RETURNING *`
	err := r.db.GetContext(ctx, &app, query, status, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *postgresApplicationRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM job_applications WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
