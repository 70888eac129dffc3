package api

import (
	"errors"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/atulv2861/seven-healer-backend/internal/mailer"
	"github.com/atulv2861/seven-healer-backend/internal/service"
)

type ContactHandler struct {
	contactService service.ContactService
	validate       *validator.Validate
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validate:       newValidator(),
	}
}

type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,phone"`
	Address string `json:"address" form:"address"`
	Message string `json:"message" form:"message" validate:"required,min=5"`
}

// SendEmail accepts either a JSON body or multipart form data; attachments are
// only possible with the multipart variant.
func (h *ContactHandler) SendEmail(c *fiber.Ctx) error {
	var request ContactRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse request body"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	attachments, err := readAttachments(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err = h.contactService.SendContactEmail(c.Context(), service.ContactDTO{
		Name:        request.Name,
		Email:       request.Email,
		Phone:       request.Phone,
		Address:     request.Address,
		Message:     request.Message,
		Attachments: attachments,
	})
	if err != nil {
		if errors.Is(err, service.ErrAttachmentTooLarge) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Attachment exceeds the maximum allowed size"})
		}
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Email sent successfully"})
}

func readAttachments(c *fiber.Ctx) ([]mailer.Attachment, error) {
	if !strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.New("cannot parse multipart form")
	}

	var attachments []mailer.Attachment
	for _, headers := range form.File {
		for _, header := range headers {
			if header.Size > mailer.MaxAttachmentSize {
				return nil, errors.New("attachment exceeds the maximum allowed size")
			}

			file, err := header.Open()
			if err != nil {
				return nil, errors.New("cannot read attachment")
			}
			content, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				return nil, errors.New("cannot read attachment")
			}

			attachments = append(attachments, mailer.Attachment{
				Filename: header.Filename,
				Content:  content,
			})
		}
	}

	return attachments, nil
}
