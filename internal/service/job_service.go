package service

import (
	"context"
	"errors"
	"slices"

	"github.com/atulv2861/seven-healer-backend/internal/model"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
)

var (
	ErrJobNotFound      = errors.New("job opening not found")
	ErrJobIDTaken       = errors.New("job with this job_id already exists")
	ErrInvalidJobStatus = errors.New("invalid job status")
	ErrInvalidJobType   = errors.New("invalid job type")
)

type CreateJobDTO struct {
	JobID               string
	Title               string
	Company             string
	Location            string
	Type                string
	PostedDate          string
	Description         string
	Overview            string
	KeyResponsibilities []model.KeyResponsibility
	Qualifications      []string
	Remuneration        string
	WhyJoinUs           string
	Status              string
}

type UpdateJobDTO struct {
	JobID               *string
	Title               *string
	Company             *string
	Location            *string
	Type                *string
	PostedDate          *string
	Description         *string
	Overview            *string
	KeyResponsibilities *[]model.KeyResponsibility
	Qualifications      *[]string
	Remuneration        *string
	WhyJoinUs           *string
	Status              *string
}

type JobService interface {
	Create(ctx context.Context, dto CreateJobDTO) (*model.JobOpening, error)
	Get(ctx context.Context, jobID string) (*model.JobOpening, error)
	ListActive(ctx context.Context, filter repository.JobFilter, page, limit int) ([]model.JobOpening, int, error)
	ListAdmin(ctx context.Context, filter repository.JobFilter, page, limit int) ([]model.JobOpening, int, error)
	Update(ctx context.Context, jobID string, dto UpdateJobDTO) (*model.JobOpening, error)
	UpdateStatus(ctx context.Context, jobID, status string) (*model.JobOpening, error)
	Delete(ctx context.Context, jobID string) error
	Stats(ctx context.Context) (*model.JobStats, error)
}

type jobService struct {
	jobRepo repository.JobRepository
}

func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

// Enum values carry spaces ("Full Time", "Under Review"), which rules out the
// validator oneof tag; membership is checked here instead.
func (s *jobService) Create(ctx context.Context, dto CreateJobDTO) (*model.JobOpening, error) {
	status := dto.Status
	if status == "" {
		status = model.JobStatusActive
	}
	if !slices.Contains(model.JobStatuses, status) {
		return nil, ErrInvalidJobStatus
	}
	if !slices.Contains(model.JobTypes, dto.Type) {
		return nil, ErrInvalidJobType
	}

	job := &model.JobOpening{
		JobID:               dto.JobID,
		Title:               dto.Title,
		Company:             dto.Company,
		Location:            dto.Location,
		Type:                dto.Type,
		PostedDate:          dto.PostedDate,
		Description:         dto.Description,
		Overview:            dto.Overview,
		KeyResponsibilities: dto.KeyResponsibilities,
		Qualifications:      dto.Qualifications,
		Remuneration:        dto.Remuneration,
		WhyJoinUs:           dto.WhyJoinUs,
		Status:              status,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrJobIDTaken
		}
		return nil, err
	}

	return job, nil
}

func (s *jobService) Get(ctx context.Context, jobID string) (*model.JobOpening, error) {
	job, err := s.jobRepo.FindByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (s *jobService) ListActive(ctx context.Context, filter repository.JobFilter, page, limit int) ([]model.JobOpening, int, error) {
	filter.Status = model.JobStatusActive
	return s.jobRepo.List(ctx, filter, page, limit)
}

func (s *jobService) ListAdmin(ctx context.Context, filter repository.JobFilter, page, limit int) ([]model.JobOpening, int, error) {
	if filter.Status != "" && !slices.Contains(model.JobStatuses, filter.Status) {
		return nil, 0, ErrInvalidJobStatus
	}
	if filter.Type != "" && !slices.Contains(model.JobTypes, filter.Type) {
		return nil, 0, ErrInvalidJobType
	}
	return s.jobRepo.List(ctx, filter, page, limit)
}

func (s *jobService) Update(ctx context.Context, jobID string, dto UpdateJobDTO) (*model.JobOpening, error) {
	job, err := s.jobRepo.FindByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	if dto.Status != nil && !slices.Contains(model.JobStatuses, *dto.Status) {
		return nil, ErrInvalidJobStatus
	}
	if dto.Type != nil && !slices.Contains(model.JobTypes, *dto.Type) {
		return nil, ErrInvalidJobType
	}

	if dto.JobID != nil {
		job.JobID = *dto.JobID
	}
	if dto.Title != nil {
		job.Title = *dto.Title
	}
	if dto.Company != nil {
		job.Company = *dto.Company
	}
	if dto.Location != nil {
		job.Location = *dto.Location
	}
	if dto.Type != nil {
		job.Type = *dto.Type
	}
	if dto.PostedDate != nil {
		job.PostedDate = *dto.PostedDate
	}
	if dto.Description != nil {
		job.Description = *dto.Description
	}
	if dto.Overview != nil {
		job.Overview = *dto.Overview
	}
	if dto.KeyResponsibilities != nil {
		job.KeyResponsibilities = *dto.KeyResponsibilities
	}
	if dto.Qualifications != nil {
		job.Qualifications = *dto.Qualifications
	}
	if dto.Remuneration != nil {
		job.Remuneration = *dto.Remuneration
	}
	if dto.WhyJoinUs != nil {
		job.WhyJoinUs = *dto.WhyJoinUs
	}
	if dto.Status != nil {
		job.Status = *dto.Status
	}

	// The row is keyed on its uuid, so a job_id change lands on the same row
	// and the unique index decides whether the new identifier is free.
	if err := s.jobRepo.Update(ctx, job); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrJobIDTaken
		}
		return nil, err
	}
	return job, nil
}

func (s *jobService) UpdateStatus(ctx context.Context, jobID, status string) (*model.JobOpening, error) {
	if !slices.Contains(model.JobStatuses, status) {
		return nil, ErrInvalidJobStatus
	}

	job, err := s.jobRepo.FindByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	job.Status = status
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, jobID string) error {
	deleted, err := s.jobRepo.Delete(ctx, jobID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrJobNotFound
	}
	return nil
}

func (s *jobService) Stats(ctx context.Context) (*model.JobStats, error) {
	return s.jobRepo.Stats(ctx)
}
