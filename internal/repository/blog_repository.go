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

type BlogFilter struct {
	Status string
	Author string
	Tag    string
	Search string
}

type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*model.Blog, error)
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
	List(ctx context.Context, filter BlogFilter, page, limit int) ([]model.Blog, int, error)
	Update(ctx context.Context, blog *model.Blog) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type postgresBlogRepository struct {
	db *sqlx.DB
}

func NewPostgresBlogRepository(db *sqlx.DB) BlogRepository {
	return &postgresBlogRepository{db: db}
}

func (r *postgresBlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	query := `INSERT INTO blogs (title, slug, excerpt, content, image, author, author_bio, author_image, published_at, tags, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowxContext(ctx, query,
		blog.Title, blog.Slug, blog.Excerpt, blog.Content, blog.Image,
		blog.Author, blog.AuthorBio, blog.AuthorImage, blog.PublishedAt, blog.Tags, blog.Status,
	).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
}

func (r *postgresBlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	var blog model.Blog
	err := r.db.GetContext(ctx, &blog, `SELECT * FROM blogs WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

func (r *postgresBlogRepository) FindBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	var blog model.Blog
	err := r.db.GetContext(ctx, &blog, `SELECT * FROM blogs WHERE slug = $1`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

func (r *postgresBlogRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM blogs WHERE slug = $1`
	args := []interface{}{slug}
	if excludeID != nil {
		query += ` AND id <> $2`
		args = append(args, *excludeID)
	}
	query += `)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, args...); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresBlogRepository) List(ctx context.Context, filter BlogFilter, page, limit int) ([]model.Blog, int, error) {
	baseQuery := `SELECT * FROM blogs WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM blogs WHERE 1=1`

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
	if filter.Author != "" {
		appendCond(fmt.Sprintf(" AND author ILIKE '%%' || $%d || '%%'", argID), filter.Author)
	}
	if filter.Tag != "" {
		appendCond(fmt.Sprintf(" AND tags @> to_jsonb(ARRAY[$%d]::text[])", argID), filter.Tag)
	}
	if filter.Search != "" {
		appendCond(fmt.Sprintf(" AND (title ILIKE '%%' || $%d || '%%' OR excerpt ILIKE '%%' || $%d || '%%')", argID, argID), filter.Search)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	baseQuery += fmt.Sprintf(" ORDER BY published_at DESC, created_at DESC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, limit, (page-1)*limit)

	var blogs []model.Blog
	if err := r.db.SelectContext(ctx, &blogs, baseQuery, args...); err != nil {
		return nil, 0, err
	}
	if blogs == nil {
		blogs = []model.Blog{}
	}

	return blogs, total, nil
}

func (r *postgresBlogRepository) Update(ctx context.Context, blog *model.Blog) error {
	query := `UPDATE blogs
		SET title = $1, slug = $2, excerpt = $3, content = $4, image = $5, author = $6,
		    author_bio = $7, author_image = $8, published_at = $9, tags = $10, status = $11,
		    updated_at = now()
		WHERE id = $12
		RETURNING updated_at`
	return r.db.QueryRowxContext(ctx, query,
		blog.Title, blog.Slug, blog.Excerpt, blog.Content, blog.Image, blog.Author,
		blog.AuthorBio, blog.AuthorImage, blog.PublishedAt, blog.Tags, blog.Status, blog.ID,
	).Scan(&blog.UpdatedAt)
}

func (r *postgresBlogRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
