package api

import (
	"log/slog"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/atulv2861/seven-healer-backend/internal/repository"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9()\s-]{10,15}$`)

// newValidator builds the shared request validator with the custom phone rule
// used across signup, contact and application payloads.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return phonePattern.MatchString(value)
	})
	return v
}

func parsePagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func paginatedResponse(items any, page, limit, total int) fiber.Map {
	return fiber.Map{
		"items":      items,
		"pagination": repository.NewPaginationMeta(page, limit, total),
	}
}

// serverError logs the real cause and returns a generic message; internals
// never reach the client.
func serverError(c *fiber.Ctx, err error) error {
	slog.ErrorContext(c.UserContext(), "Internal server error",
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
