package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/atulv2861/seven-healer-backend/internal/model"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
	"github.com/atulv2861/seven-healer-backend/internal/service"
)

type ProjectHandler struct {
	projectService service.ProjectService
	validate       *validator.Validate
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		validate:       newValidator(),
	}
}

type ProjectDetailRequest struct {
	Heading     string `json:"heading" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type CreateProjectRequest struct {
	Title       string                 `json:"title" validate:"required,min=3,max=200"`
	Location    string                 `json:"location" validate:"required"`
	Beds        string                 `json:"beds"`
	Area        string                 `json:"area"`
	Client      string                 `json:"client" validate:"required"`
	Status      string                 `json:"status"`
	Description string                 `json:"description" validate:"required"`
	Features    []string               `json:"features"`
	Image       *string                `json:"image"`
	ImageName   *string                `json:"image_name"`
	Details     []ProjectDetailRequest `json:"details"`
}

func toProjectDetails(in []ProjectDetailRequest) []model.ProjectDetail {
	out := make([]model.ProjectDetail, 0, len(in))
	for _, block := range in {
		out = append(out, model.ProjectDetail{
			Heading:     block.Heading,
			Description: block.Description,
		})
	}
	return out
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var request CreateProjectRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	project, err := h.projectService.Create(c.Context(), service.CreateProjectDTO{
		Title:       request.Title,
		Location:    request.Location,
		Beds:        request.Beds,
		Area:        request.Area,
		Client:      request.Client,
		Status:      request.Status,
		Description: request.Description,
		Features:    request.Features,
		Image:       request.Image,
		ImageName:   request.ImageName,
		Details:     toProjectDetails(request.Details),
	})

	if err != nil {
		if errors.Is(err, service.ErrInvalidProjectStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *ProjectHandler) ListPublic(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	projects, total, err := h.projectService.ListCompleted(c.Context(), page, limit)
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(paginatedResponse(projects, page, limit, total))
}

func (h *ProjectHandler) ListAdmin(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	filter := repository.ProjectFilter{
		Status: c.Query("status"),
		Client: c.Query("client"),
		Search: c.Query("search"),
	}

	projects, total, err := h.projectService.ListAdmin(c.Context(), filter, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidProjectStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(paginatedResponse(projects, page, limit, total))
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}

	project, err := h.projectService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(project)
}

type UpdateProjectRequest struct {
	Title       *string                 `json:"title" validate:"omitempty,min=3,max=200"`
	Location    *string                 `json:"location"`
	Beds        *string                 `json:"beds"`
	Area        *string                 `json:"area"`
	Client      *string                 `json:"client"`
	Status      *string                 `json:"status"`
	Description *string                 `json:"description"`
	Features    *[]string               `json:"features"`
	Image       *string                 `json:"image"`
	ImageName   *string                 `json:"image_name"`
	Details     *[]ProjectDetailRequest `json:"details"`
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}

	var request UpdateProjectRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	dto := service.UpdateProjectDTO{
		Title:       request.Title,
		Location:    request.Location,
		Beds:        request.Beds,
		Area:        request.Area,
		Client:      request.Client,
		Status:      request.Status,
		Description: request.Description,
		Features:    request.Features,
		Image:       request.Image,
		ImageName:   request.ImageName,
	}
	if request.Details != nil {
		details := toProjectDetails(*request.Details)
		dto.Details = &details
	}

	project, err := h.projectService.Update(c.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		case errors.Is(err, service.ErrInvalidProjectStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		default:
			return serverError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(project)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid project id"})
	}

	if err := h.projectService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		return serverError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProjectHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.projectService.Stats(c.Context())
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
