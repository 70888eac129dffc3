package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/atulv2861/seven-healer-backend/internal/events"
	"github.com/atulv2861/seven-healer-backend/internal/mailer"
	"github.com/atulv2861/seven-healer-backend/internal/model"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("an application for this job with this email already exists")
	ErrJobSelectionRequired = errors.New("selected_job_id is required when applying for an available job")
	ErrUnknownJob           = errors.New("selected job does not exist")
	ErrInvalidCV            = errors.New("cv content is not valid base64")
	ErrCVTooLarge           = errors.New("cv exceeds the maximum allowed size")
	ErrInvalidAppStatus     = errors.New("invalid application status")
)

type CreateApplicationDTO struct {
	FirstName            string
	LastName             string
	Email                string
	Phone                string
	Address              string
	City                 string
	State                string
	Country              string
	Qualification        string
	ExperienceYears      string
	CurrentCompany       *string
	ApplyForAvailableJob bool
	SelectedJobID        *string
	CVFileName           *string
	CVContent            *string
}

type ApplicationService interface {
	Submit(ctx context.Context, dto CreateApplicationDTO) (*model.JobApplication, error)
	Get(ctx context.Context, id uuid.UUID) (*model.JobApplication, error)
	List(ctx context.Context, filter repository.ApplicationFilter, page, limit int) ([]model.JobApplication, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.JobApplication, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type applicationService struct {
	appRepo      repository.ApplicationRepository
	jobRepo      repository.JobRepository
	mail         mailer.Mailer
	templates    *mailer.TemplateStore
	publisher    events.EventPublisher
	careersInbox string
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	mail mailer.Mailer,
	templates *mailer.TemplateStore,
	publisher events.EventPublisher,
	careersInbox string,
) ApplicationService {
	return &applicationService{
		appRepo:      appRepo,
		jobRepo:      jobRepo,
		mail:         mail,
		templates:    templates,
		publisher:    publisher,
		careersInbox: careersInbox,
	}
}

func (s *applicationService) Submit(ctx context.Context, dto CreateApplicationDTO) (*model.JobApplication, error) {
	if dto.ApplyForAvailableJob && (dto.SelectedJobID == nil || *dto.SelectedJobID == "") {
		return nil, ErrJobSelectionRequired
	}

	if dto.SelectedJobID != nil && *dto.SelectedJobID != "" {
		job, err := s.jobRepo.FindByJobID(ctx, *dto.SelectedJobID)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, ErrUnknownJob
		}
	}

	var cvBytes []byte
	var cvSize *int64
	if dto.CVContent != nil && *dto.CVContent != "" {
		decoded, err := base64.StdEncoding.DecodeString(*dto.CVContent)
		if err != nil {
			return nil, ErrInvalidCV
		}
		if len(decoded) > mailer.MaxAttachmentSize {
			return nil, ErrCVTooLarge
		}
		cvBytes = decoded
		size := int64(len(decoded))
		cvSize = &size
	}

	app := &model.JobApplication{
		FirstName:       dto.FirstName,
		LastName:        dto.LastName,
		Email:           dto.Email,
		Phone:           dto.Phone,
		Address:         dto.Address,
		City:            dto.City,
		State:           dto.State,
		Country:         dto.Country,
		Qualification:   dto.Qualification,
		ExperienceYears: dto.ExperienceYears,
		CurrentCompany:  dto.CurrentCompany,
		SelectedJobID:   dto.SelectedJobID,
		CVFileName:      dto.CVFileName,
		CVContent:       dto.CVContent,
		CVSize:          cvSize,
		Status:          model.ApplicationStatusPending,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}

	// Mail goes out synchronously and a failure fails the request; the stored
	// row stays so an admin can still see the submission.
	if err := s.sendApplicationMail(ctx, app, cvBytes); err != nil {
		return nil, err
	}

	go s.publisher.PublishApplicationReceived(app.ID, app.Email, app.SelectedJobID)

	return app, nil
}

func (s *applicationService) sendApplicationMail(ctx context.Context, app *model.JobApplication, cvBytes []byte) error {
	values := map[string]string{
		"first_name":       app.FirstName,
		"last_name":        app.LastName,
		"email":            app.Email,
		"phone":            app.Phone,
		"address":          app.Address,
		"city":             app.City,
		"state":            app.State,
		"country":          app.Country,
		"qualification":    app.Qualification,
		"experience_years": app.ExperienceYears,
		"job_id":           "",
	}
	if app.SelectedJobID != nil {
		values["job_id"] = *app.SelectedJobID
	}
	if app.CurrentCompany != nil {
		values["current_company"] = *app.CurrentCompany
	}

	inboxBody, err := s.templates.Render("cv_email.html", values)
	if err != nil {
		return err
	}

	inboxMsg := mailer.Message{
		To:       s.careersInbox,
		Subject:  fmt.Sprintf("New job application from %s %s", app.FirstName, app.LastName),
		HTMLBody: inboxBody,
	}
	if cvBytes != nil && app.CVFileName != nil {
		inboxMsg.Attachments = []mailer.Attachment{{Filename: *app.CVFileName, Content: cvBytes}}
	}
	if err := s.mail.Send(ctx, inboxMsg); err != nil {
		return err
	}

	confirmBody, err := s.templates.Render("cv_confirmation.html", values)
	if err != nil {
		return err
	}

	return s.mail.Send(ctx, mailer.Message{
		To:       app.Email,
		Subject:  "We received your application",
		HTMLBody: confirmBody,
	})
}

func (s *applicationService) Get(ctx context.Context, id uuid.UUID) (*model.JobApplication, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	return app, nil
}

func (s *applicationService) List(ctx context.Context, filter repository.ApplicationFilter, page, limit int) ([]model.JobApplication, int, error) {
	if filter.Status != "" && !slices.Contains(model.ApplicationStatuses, filter.Status) {
		return nil, 0, ErrInvalidAppStatus
	}
	return s.appRepo.List(ctx, filter, page, limit)
}

func (s *applicationService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.JobApplication, error) {
	if !slices.Contains(model.ApplicationStatuses, status) {
		return nil, ErrInvalidAppStatus
	}

	app, err := s.appRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	return app, nil
}

func (s *applicationService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.appRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrApplicationNotFound
	}
	return nil
}
