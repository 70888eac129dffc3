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

type ProjectFilter struct {
	Status string
	Client string
	Search string
}

type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context, filter ProjectFilter, page, limit int) ([]model.Project, int, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Stats(ctx context.Context) (*model.ProjectStats, error)
}

type postgresProjectRepository struct {
	db *sqlx.DB
}

func NewPostgresProjectRepository(db *sqlx.DB) ProjectRepository {
	return &postgresProjectRepository{db: db}
}

func (r *postgresProjectRepository) Create(ctx context.Context, project *model.Project) error {
	query := `INSERT INTO projects (title, location, beds, area, client, status, description, features, image, image_name, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowxContext(ctx, query,
		project.Title, project.Location, project.Beds, project.Area, project.Client, project.Status,
		project.Description, project.Features, project.Image, project.ImageName, project.Details,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *postgresProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := r.db.GetContext(ctx, &project, `SELECT * FROM projects WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *postgresProjectRepository) List(ctx context.Context, filter ProjectFilter, page, limit int) ([]model.Project, int, error) {
	baseQuery := `SELECT * FROM projects WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM projects WHERE 1=1`

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
	if filter.Client != "" {
		appendCond(fmt.Sprintf(" AND client ILIKE '%%' || $%d || '%%'", argID), filter.Client)
	}
	if filter.Search != "" {
		appendCond(fmt.Sprintf(" AND (title ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')", argID, argID), filter.Search)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	baseQuery += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, limit, (page-1)*limit)

	var projects []model.Project
	if err := r.db.SelectContext(ctx, &projects, baseQuery, args...); err != nil {
		return nil, 0, err
	}
	if projects == nil {
		projects = []model.Project{}
	}

	return projects, total, nil
}

func (r *postgresProjectRepository) Update(ctx context.Context, project *model.Project) error {
	query := `UPDATE projects
		SET title = $1, location = $2, beds = $3, area = $4, client = $5, status = $6,
		    description = $7, features = $8, image = $9, image_name = $10, details = $11, updated_at = now()
		WHERE id = $12
		RETURNING updated_at`
	return r.db.QueryRowxContext(ctx, query,
		project.Title, project.Location, project.Beds, project.Area, project.Client, project.Status,
		project.Description, project.Features, project.Image, project.ImageName, project.Details, project.ID,
	).Scan(&project.UpdatedAt)
}

func (r *postgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *postgresProjectRepository) Stats(ctx context.Context) (*model.ProjectStats, error) {
	stats := &model.ProjectStats{
		StatusBreakdown: map[string]int{},
		ClientBreakdown: map[string]int{},
	}

	if err := r.db.GetContext(ctx, &stats.TotalProjects, `SELECT COUNT(*) FROM projects`); err != nil {
		return nil, err
	}

	type bucket struct {
		Key   string `db:"key"`
		Count int    `db:"count"`
	}

	var byStatus []bucket
	if err := r.db.SelectContext(ctx, &byStatus, `SELECT status AS key, COUNT(*) AS count FROM projects GROUP BY status`); err != nil {
		return nil, err
	}
	for _, b := range byStatus {
		stats.StatusBreakdown[b.Key] = b.Count
	}

	var byClient []bucket
	if err := r.db.SelectContext(ctx, &byClient, `SELECT client AS key, COUNT(*) AS count FROM projects GROUP BY client`); err != nil {
		return nil, err
	}
	for _, b := range byClient {
		stats.ClientBreakdown[b.Key] = b.Count
	}
	stats.TotalClients = len(stats.ClientBreakdown)

	return stats, nil
}
