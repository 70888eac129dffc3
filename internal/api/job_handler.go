package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/atulv2861/seven-healer-backend/internal/model"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
	"github.com/atulv2861/seven-healer-backend/internal/service"
)

type JobHandler struct {
	jobService service.JobService
	validate   *validator.Validate
}

func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		validate:   newValidator(),
	}
}

type KeyResponsibilityRequest struct {
	Category string   `json:"category" validate:"required"`
	Items    []string `json:"items" validate:"required,min=1"`
}

type CreateJobRequest struct {
	JobID               string                     `json:"job_id" validate:"required,min=2,max=30"`
	Title               string                     `json:"title" validate:"required,min=3,max=200"`
	Company             string                     `json:"company" validate:"required"`
	Location            string                     `json:"location" validate:"required"`
	Type                string                     `json:"type" validate:"required"`
	PostedDate          string                     `json:"posted_date"`
	Description         string                     `json:"description" validate:"required"`
	Overview            string                     `json:"overview"`
	KeyResponsibilities []KeyResponsibilityRequest `json:"key_responsibilities"`
	Qualifications      []string                   `json:"qualifications"`
	Remuneration        string                     `json:"remuneration"`
	WhyJoinUs           string                     `json:"why_join_us"`
	Status              string                     `json:"status"`
}

func toKeyResponsibilities(in []KeyResponsibilityRequest) []model.KeyResponsibility {
	out := make([]model.KeyResponsibility, 0, len(in))
	for _, group := range in {
		out = append(out, model.KeyResponsibility{
			Category: group.Category,
			Items:    group.Items,
		})
	}
	return out
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var request CreateJobRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	job, err := h.jobService.Create(c.Context(), service.CreateJobDTO{
		JobID:               request.JobID,
		Title:               request.Title,
		Company:             request.Company,
		Location:            request.Location,
		Type:                request.Type,
		PostedDate:          request.PostedDate,
		Description:         request.Description,
		Overview:            request.Overview,
		KeyResponsibilities: toKeyResponsibilities(request.KeyResponsibilities),
		Qualifications:      request.Qualifications,
		Remuneration:        request.Remuneration,
		WhyJoinUs:           request.WhyJoinUs,
		Status:              request.Status,
	})

	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidJobStatus), errors.Is(err, service.ErrInvalidJobType):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrJobIDTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Job with this job_id already exists"})
		default:
			return serverError(c, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

func (h *JobHandler) ListActive(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	jobs, total, err := h.jobService.ListActive(c.Context(), repository.JobFilter{}, page, limit)
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(paginatedResponse(jobs, page, limit, total))
}

// SearchAdvanced is the public job search; status defaults to Active so
// unpublished openings stay hidden unless explicitly requested by an admin
// through the listing filters.
func (h *JobHandler) SearchAdvanced(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	status := c.Query("status")
	if status == "" {
		status = model.JobStatusActive
	}

	filter := repository.JobFilter{
		Title:    c.Query("title"),
		Company:  c.Query("company"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
		Status:   status,
	}

	jobs, total, err := h.jobService.ListAdmin(c.Context(), filter, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidJobStatus) || errors.Is(err, service.ErrInvalidJobType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(paginatedResponse(jobs, page, limit, total))
}

func (h *JobHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.jobService.Stats(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.jobService.Get(c.Context(), c.Params("job_id"))
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(job)
}

type UpdateJobRequest struct {
	JobID               *string                     `json:"job_id" validate:"omitempty,min=2,max=30"`
	Title               *string                     `json:"title" validate:"omitempty,min=3,max=200"`
	Company             *string                     `json:"company"`
	Location            *string                     `json:"location"`
	Type                *string                     `json:"type"`
	PostedDate          *string                     `json:"posted_date"`
	Description         *string                     `json:"description"`
	Overview            *string                     `json:"overview"`
	KeyResponsibilities *[]KeyResponsibilityRequest `json:"key_responsibilities"`
	Qualifications      *[]string                   `json:"qualifications"`
	Remuneration        *string                     `json:"remuneration"`
	WhyJoinUs           *string                     `json:"why_join_us"`
	Status              *string                     `json:"status"`
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	var request UpdateJobRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	dto := service.UpdateJobDTO{
		JobID:          request.JobID,
		Title:          request.Title,
		Company:        request.Company,
		Location:       request.Location,
		Type:           request.Type,
		PostedDate:     request.PostedDate,
		Description:    request.Description,
		Overview:       request.Overview,
		Qualifications: request.Qualifications,
		Remuneration:   request.Remuneration,
		WhyJoinUs:      request.WhyJoinUs,
		Status:         request.Status,
	}
	if request.KeyResponsibilities != nil {
		groups := toKeyResponsibilities(*request.KeyResponsibilities)
		dto.KeyResponsibilities = &groups
	}

	job, err := h.jobService.Update(c.Context(), c.Params("job_id"), dto)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
		case errors.Is(err, service.ErrInvalidJobStatus), errors.Is(err, service.ErrInvalidJobType):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrJobIDTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Job with this job_id already exists"})
		default:
			return serverError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(job)
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *JobHandler) UpdateStatus(c *fiber.Ctx) error {
	var request UpdateJobStatusRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	job, err := h.jobService.UpdateStatus(c.Context(), c.Params("job_id"), request.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
		case errors.Is(err, service.ErrInvalidJobStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		default:
			return serverError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(job)
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	if err := h.jobService.Delete(c.Context(), c.Params("job_id")); err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
		}
		return serverError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
