package service

import (
	"context"
	"errors"

	"github.com/atulv2861/seven-healer-backend/internal/events"
	"github.com/atulv2861/seven-healer-backend/internal/mailer"
)

var ErrAttachmentTooLarge = errors.New("attachment exceeds the maximum allowed size")

type ContactDTO struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	Message     string
	Attachments []mailer.Attachment
}

type ContactService interface {
	SendContactEmail(ctx context.Context, dto ContactDTO) error
}

type contactService struct {
	mail      mailer.Mailer
	templates *mailer.TemplateStore
	publisher events.EventPublisher
}

func NewContactService(mail mailer.Mailer, templates *mailer.TemplateStore, publisher events.EventPublisher) ContactService {
	return &contactService{mail: mail, templates: templates, publisher: publisher}
}

// SendContactEmail delivers the enquiry and then a confirmation, both to the
// address the visitor submitted. Either send failing fails the whole request;
// there is no retry or queue.
func (s *contactService) SendContactEmail(ctx context.Context, dto ContactDTO) error {
	for _, att := range dto.Attachments {
		if len(att.Content) > mailer.MaxAttachmentSize {
			return ErrAttachmentTooLarge
		}
	}

	values := map[string]string{
		"name":    dto.Name,
		"email":   dto.Email,
		"phone":   dto.Phone,
		"address": dto.Address,
		"message": dto.Message,
	}

	enquiryBody, err := s.templates.Render("contact_email.html", values)
	if err != nil {
		return err
	}
	if err := s.mail.Send(ctx, mailer.Message{
		To:          dto.Email,
		Subject:     "New contact enquiry from " + dto.Name,
		HTMLBody:    enquiryBody,
		Attachments: dto.Attachments,
	}); err != nil {
		return err
	}

	confirmBody, err := s.templates.Render("contact_confirmation.html", values)
	if err != nil {
		return err
	}
	if err := s.mail.Send(ctx, mailer.Message{
		To:       dto.Email,
		Subject:  "We received your message",
		HTMLBody: confirmBody,
	}); err != nil {
		return err
	}

	go s.publisher.PublishContactReceived(dto.Name, dto.Email)

	return nil
}
