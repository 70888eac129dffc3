package api

import (
	"errors"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/atulv2861/seven-healer-backend/internal/model"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
	"github.com/atulv2861/seven-healer-backend/internal/service"
)

type BlogHandler struct {
	blogService service.BlogService
	validate    *validator.Validate
}

func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		validate:    newValidator(),
	}
}

type ContentSectionRequest struct {
	Heading     string   `json:"heading" validate:"required"`
	Description string   `json:"description"`
	SubSections []string `json:"sub_sections"`
}

type CreateBlogRequest struct {
	Title       string                  `json:"title" validate:"required,min=3,max=200"`
	Slug        string                  `json:"slug"`
	Excerpt     string                  `json:"excerpt" validate:"required"`
	Content     []ContentSectionRequest `json:"content"`
	Image       *string                 `json:"image"`
	Author      string                  `json:"author" validate:"required"`
	AuthorBio   *string                 `json:"author_bio"`
	AuthorImage *string                 `json:"author_image"`
	PublishedAt *time.Time              `json:"published_at"`
	Tags        []string                `json:"tags"`
	Status      string                  `json:"status"`
}

func toContentSections(in []ContentSectionRequest) []model.ContentSection {
	out := make([]model.ContentSection, 0, len(in))
	for _, section := range in {
		subs := section.SubSections
		if subs == nil {
			subs = []string{}
		}
		out = append(out, model.ContentSection{
			Heading:     section.Heading,
			Description: section.Description,
			SubSections: subs,
		})
	}
	return out
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var request CreateBlogRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	blog, err := h.blogService.Create(c.Context(), service.CreateBlogDTO{
		Title:       request.Title,
		Slug:        request.Slug,
		Excerpt:     request.Excerpt,
		Content:     toContentSections(request.Content),
		Image:       request.Image,
		Author:      request.Author,
		AuthorBio:   request.AuthorBio,
		AuthorImage: request.AuthorImage,
		PublishedAt: request.PublishedAt,
		Tags:        request.Tags,
		Status:      request.Status,
	})

	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBlogStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		case errors.Is(err, service.ErrSlugTaken), errors.Is(err, service.ErrSlugExhausted):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slug already in use"})
		default:
			return serverError(c, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(blog)
}

func (h *BlogHandler) ListPublished(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	blogs, total, err := h.blogService.ListPublished(c.Context(), page, limit)
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(paginatedResponse(blogs, page, limit, total))
}

func (h *BlogHandler) ListAdmin(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	filter := repository.BlogFilter{
		Status: c.Query("status"),
		Author: c.Query("author"),
		Tag:    c.Query("tag"),
		Search: c.Query("search"),
	}

	blogs, total, err := h.blogService.ListAdmin(c.Context(), filter, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBlogStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(paginatedResponse(blogs, page, limit, total))
}

func (h *BlogHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid blog id"})
	}

	identity, _ := IdentityFromContext(c)

	blog, err := h.blogService.Get(c.Context(), id, identity.IsAdmin())
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(blog)
}

func (h *BlogHandler) GetBySlug(c *fiber.Ctx) error {
	blog, err := h.blogService.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(blog)
}

type UpdateBlogRequest struct {
	Title       *string                  `json:"title" validate:"omitempty,min=3,max=200"`
	Slug        *string                  `json:"slug"`
	Excerpt     *string                  `json:"excerpt"`
	Content     *[]ContentSectionRequest `json:"content"`
	Image       *string                  `json:"image"`
	Author      *string                  `json:"author"`
	AuthorBio   *string                  `json:"author_bio"`
	AuthorImage *string                  `json:"author_image"`
	PublishedAt *time.Time               `json:"published_at"`
	Tags        *[]string                `json:"tags"`
	Status      *string                  `json:"status"`
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid blog id"})
	}

	var request UpdateBlogRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	dto := service.UpdateBlogDTO{
		Title:       request.Title,
		Slug:        request.Slug,
		Excerpt:     request.Excerpt,
		Image:       request.Image,
		Author:      request.Author,
		AuthorBio:   request.AuthorBio,
		AuthorImage: request.AuthorImage,
		PublishedAt: request.PublishedAt,
		Tags:        request.Tags,
		Status:      request.Status,
	}
	if request.Content != nil {
		sections := toContentSections(*request.Content)
		dto.Content = &sections
	}

	blog, err := h.blogService.Update(c.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		case errors.Is(err, service.ErrInvalidBlogStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		case errors.Is(err, service.ErrSlugTaken), errors.Is(err, service.ErrSlugExhausted):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slug already in use"})
		default:
			return serverError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(blog)
}

type UpdateBlogStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *BlogHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid blog id"})
	}

	var request UpdateBlogStatusRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	blog, err := h.blogService.UpdateStatus(c.Context(), id, request.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		case errors.Is(err, service.ErrInvalidBlogStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		default:
			return serverError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(blog)
}

type UpdateBlogTagsRequest struct {
	Tags []string `json:"tags" validate:"required"`
}

func (h *BlogHandler) UpdateTags(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid blog id"})
	}

	var request UpdateBlogTagsRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	blog, err := h.blogService.UpdateTags(c.Context(), id, request.Tags)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(blog)
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid blog id"})
	}

	if err := h.blogService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		}
		return serverError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BlogHandler) AddSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid blog id"})
	}

	var request ContentSectionRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	blog, err := h.blogService.AddSection(c.Context(), id, model.ContentSection{
		Heading:     request.Heading,
		Description: request.Description,
		SubSections: request.SubSections,
	})
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(blog)
}

type UpdateSectionRequest struct {
	Heading     string    `json:"heading" validate:"required"`
	NewHeading  *string   `json:"new_heading"`
	Description *string   `json:"description"`
	SubSections *[]string `json:"sub_sections"`
}

func (h *BlogHandler) UpdateSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid blog id"})
	}

	var request UpdateSectionRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	blog, err := h.blogService.UpdateSection(c.Context(), id, service.UpdateSectionDTO{
		Heading:     request.Heading,
		NewHeading:  request.NewHeading,
		Description: request.Description,
		SubSections: request.SubSections,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		case errors.Is(err, service.ErrSectionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Content section not found"})
		default:
			return serverError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(blog)
}

func (h *BlogHandler) RemoveSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid blog id"})
	}

	heading, err := url.PathUnescape(c.Params("heading"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid section heading"})
	}

	blog, err := h.blogService.RemoveSection(c.Context(), id, heading)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		case errors.Is(err, service.ErrSectionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Content section not found"})
		default:
			return serverError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(blog)
}
