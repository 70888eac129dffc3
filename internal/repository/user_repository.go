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

type UserFilter struct {
	Role     string
	IsActive *bool
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context, filter UserFilter, page, limit int) ([]model.User, int, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type postgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) Create(ctx context.Context, user *model.User) (uuid.UUID, error) {
	query := `INSERT INTO users (first_name, last_name, email, password_hash, phone, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	var newID uuid.UUID
	err := r.db.QueryRowxContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Phone, user.Role, user.IsActive,
	).Scan(&newID)

	if err != nil {
		return uuid.Nil, err
	}

	return newID, nil
}

func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `SELECT * FROM users WHERE email = $1`
	err := r.db.GetContext(ctx, &user, query, email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	query := `SELECT * FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *postgresUserRepository) List(ctx context.Context, filter UserFilter, page, limit int) ([]model.User, int, error) {
	baseQuery := `SELECT * FROM users WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM users WHERE 1=1`

	args := []interface{}{}
	argID := 1
	if filter.Role != "" {
		cond := fmt.Sprintf(" AND role = $%d", argID)
		baseQuery += cond
		countQuery += cond
		args = append(args, filter.Role)
		argID++
	}
	if filter.IsActive != nil {
		cond := fmt.Sprintf(" AND is_active = $%d", argID)
		baseQuery += cond
		countQuery += cond
		args = append(args, *filter.IsActive)
		argID++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	baseQuery += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, limit, (page-1)*limit)

	var users []model.User
	if err := r.db.SelectContext(ctx, &users, baseQuery, args...); err != nil {
		return nil, 0, err
	}
	if users == nil {
		users = []model.User{}
	}

	return users, total, nil
}

func (r *postgresUserRepository) Update(ctx context.Context, user *model.User) error {
	query := `UPDATE users
		SET first_name = $1, last_name = $2, phone = $3, role = $4, is_active = $5, updated_at = now()
		WHERE id = $6
		RETURNING updated_at`
	return r.db.QueryRowxContext(ctx, query,
		user.FirstName, user.LastName, user.Phone, user.Role, user.IsActive, user.ID,
	).Scan(&user.UpdatedAt)
}

func (r *postgresUserRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
