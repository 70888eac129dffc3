package service

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"

	"github.com/atulv2861/seven-healer-backend/internal/model"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrSelfDelete   = errors.New("users cannot delete their own account")
	ErrInvalidRole  = errors.New("invalid role")
)

type UpdateUserDTO struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Role      *string
	IsActive  *bool
}

type UserService interface {
	List(ctx context.Context, filter repository.UserFilter, page, limit int) ([]model.User, int, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateUserDTO) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID, caller model.Identity) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context, filter repository.UserFilter, page, limit int) ([]model.User, int, error) {
	if filter.Role != "" && !slices.Contains([]string{model.RoleAdmin, model.RoleUser}, filter.Role) {
		return nil, 0, ErrInvalidRole
	}
	return s.userRepo.List(ctx, filter, page, limit)
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, dto UpdateUserDTO) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if dto.Role != nil && !slices.Contains([]string{model.RoleAdmin, model.RoleUser}, *dto.Role) {
		return nil, ErrInvalidRole
	}

	if dto.FirstName != nil {
		user.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		user.LastName = *dto.LastName
	}
	if dto.Phone != nil {
		user.Phone = *dto.Phone
	}
	if dto.Role != nil {
		user.Role = *dto.Role
	}
	if dto.IsActive != nil {
		user.IsActive = *dto.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID, caller model.Identity) error {
	// The superuser carries a synthetic id that never collides with stored
	// rows, so the guard only bites for database-backed admins.
	if caller.User != nil && caller.User.ID == id {
		return ErrSelfDelete
	}

	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
