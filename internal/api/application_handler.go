package api

import (
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/atulv2861/seven-healer-backend/internal/mailer"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
	"github.com/atulv2861/seven-healer-backend/internal/service"
)

type ApplicationHandler struct {
	appService service.ApplicationService
	validate   *validator.Validate
}

func NewApplicationHandler(appService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		appService: appService,
		validate:   newValidator(),
	}
}

type CreateApplicationRequest struct {
	FirstName            string  `json:"first_name" form:"first_name" validate:"required,min=2,max=50"`
	LastName             string  `json:"last_name" form:"last_name" validate:"required,min=2,max=50"`
	Email                string  `json:"email" form:"email" validate:"required,email"`
	Phone                string  `json:"phone" form:"phone" validate:"required,phone"`
	Address              string  `json:"address" form:"address" validate:"required"`
	City                 string  `json:"city" form:"city" validate:"required"`
	State                string  `json:"state" form:"state" validate:"required"`
	Country              string  `json:"country" form:"country" validate:"required"`
	Qualification        string  `json:"qualification" form:"qualification" validate:"required"`
	ExperienceYears      string  `json:"experience_years" form:"experience_years" validate:"required"`
	CurrentCompany       *string `json:"current_company" form:"current_company"`
	ApplyForAvailableJob bool    `json:"apply_for_available_jobs" form:"apply_for_available_jobs"`
	SelectedJobID        *string `json:"selected_job_id" form:"selected_job_id"`
	CVFileName           *string `json:"cv_file_name" form:"cv_file_name"`
	CVContent            *string `json:"cv_content" form:"cv_content"`
}

// Submit accepts either a JSON body carrying the CV as a base64 field or a
// multipart form carrying it as a file part.
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var request CreateApplicationRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse request body"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	if request.CVContent == nil || *request.CVContent == "" {
		name, content, err := readCVUpload(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if content != nil {
			request.CVFileName = name
			request.CVContent = content
		}
	}

	app, err := h.appService.Submit(c.Context(), service.CreateApplicationDTO{
		FirstName:            request.FirstName,
		LastName:             request.LastName,
		Email:                request.Email,
		Phone:                request.Phone,
		Address:              request.Address,
		City:                 request.City,
		State:                request.State,
		Country:              request.Country,
		Qualification:        request.Qualification,
		ExperienceYears:      request.ExperienceYears,
		CurrentCompany:       request.CurrentCompany,
		ApplyForAvailableJob: request.ApplyForAvailableJob,
		SelectedJobID:        request.SelectedJobID,
		CVFileName:           request.CVFileName,
		CVContent:            request.CVContent,
	})

	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobSelectionRequired),
			errors.Is(err, service.ErrInvalidCV),
			errors.Is(err, service.ErrCVTooLarge):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrUnknownJob):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Selected job does not exist"})
		case errors.Is(err, service.ErrDuplicateApplication):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "An application for this job with this email already exists"})
		default:
			return serverError(c, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// readCVUpload pulls the first file part out of a multipart submission and
// re-encodes it as base64 so both transports feed the same DTO shape. Returns
// nils when the body is not multipart or carries no file.
func readCVUpload(c *fiber.Ctx) (*string, *string, error) {
	if !strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		return nil, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, errors.New("cannot parse multipart form")
	}

	for _, headers := range form.File {
		for _, header := range headers {
			if header.Size > mailer.MaxAttachmentSize {
				return nil, nil, errors.New("cv exceeds the maximum allowed size")
			}

			file, err := header.Open()
			if err != nil {
				return nil, nil, errors.New("cannot read cv upload")
			}
			content, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				return nil, nil, errors.New("cannot read cv upload")
			}

			name := header.Filename
			encoded := base64.StdEncoding.EncodeToString(content)
			return &name, &encoded, nil
		}
	}

	return nil, nil, nil
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	filter := repository.ApplicationFilter{
		Status: c.Query("status"),
		JobID:  c.Query("job_id"),
	}

	apps, total, err := h.appService.List(c.Context(), filter, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAppStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(paginatedResponse(apps, page, limit, total))
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application id"})
	}

	app, err := h.appService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(app)
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application id"})
	}

	var request UpdateApplicationStatusRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	app, err := h.appService.UpdateStatus(c.Context(), id, request.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrApplicationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
		case errors.Is(err, service.ErrInvalidAppStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		default:
			return serverError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(app)
}

func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application id"})
	}

	if err := h.appService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
		}
		return serverError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
