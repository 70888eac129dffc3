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
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectStatus = errors.New("invalid project status")
)

type CreateProjectDTO struct {
	Title       string
	Location    string
	Beds        string
	Area        string
	Client      string
	Status      string
	Description string
	Features    []string
	Image       *string
	ImageName   *string
	Details     []model.ProjectDetail
}

type UpdateProjectDTO struct {
	Title       *string
	Location    *string
	Beds        *string
	Area        *string
	Client      *string
	Status      *string
	Description *string
	Features    *[]string
	Image       *string
	ImageName   *string
	Details     *[]model.ProjectDetail
}

type ProjectService interface {
	Create(ctx context.Context, dto CreateProjectDTO) (*model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListCompleted(ctx context.Context, page, limit int) ([]model.Project, int, error)
	ListAdmin(ctx context.Context, filter repository.ProjectFilter, page, limit int) ([]model.Project, int, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateProjectDTO) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*model.ProjectStats, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) Create(ctx context.Context, dto CreateProjectDTO) (*model.Project, error) {
	status := dto.Status
	if status == "" {
		status = model.ProjectStatusPlanning
	}
	if !slices.Contains(model.ProjectStatuses, status) {
		return nil, ErrInvalidProjectStatus
	}

	project := &model.Project{
		Title:       dto.Title,
		Location:    dto.Location,
		Beds:        dto.Beds,
		Area:        dto.Area,
		Client:      dto.Client,
		Status:      status,
		Description: dto.Description,
		Features:    dto.Features,
		Image:       dto.Image,
		ImageName:   dto.ImageName,
		Details:     dto.Details,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

// ListCompleted is the public catalogue; only finished work is shown.
func (s *projectService) ListCompleted(ctx context.Context, page, limit int) ([]model.Project, int, error) {
	return s.projectRepo.List(ctx, repository.ProjectFilter{Status: model.ProjectStatusCompleted}, page, limit)
}

func (s *projectService) ListAdmin(ctx context.Context, filter repository.ProjectFilter, page, limit int) ([]model.Project, int, error) {
	if filter.Status != "" && !slices.Contains(model.ProjectStatuses, filter.Status) {
		return nil, 0, ErrInvalidProjectStatus
	}
	return s.projectRepo.List(ctx, filter, page, limit)
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, dto UpdateProjectDTO) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if dto.Status != nil && !slices.Contains(model.ProjectStatuses, *dto.Status) {
		return nil, ErrInvalidProjectStatus
	}

	if dto.Title != nil {
		project.Title = *dto.Title
	}
	if dto.Location != nil {
		project.Location = *dto.Location
	}
	if dto.Beds != nil {
		project.Beds = *dto.Beds
	}
	if dto.Area != nil {
		project.Area = *dto.Area
	}
	if dto.Client != nil {
		project.Client = *dto.Client
	}
	if dto.Status != nil {
		project.Status = *dto.Status
	}
	if dto.Description != nil {
		project.Description = *dto.Description
	}
	if dto.Features != nil {
		project.Features = *dto.Features
	}
	if dto.Image != nil {
		project.Image = dto.Image
	}
	if dto.ImageName != nil {
		project.ImageName = dto.ImageName
	}
	if dto.Details != nil {
		project.Details = *dto.Details
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.projectRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProjectNotFound
	}
	return nil
}

func (s *projectService) Stats(ctx context.Context) (*model.ProjectStats, error) {
	return s.projectRepo.Stats(ctx)
}
