package events

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	SubjectContactReceived     = "contact.received"
	SubjectApplicationReceived = "application.received"
)

type EventPublisher interface {
	PublishContactReceived(name, email string) error
	PublishApplicationReceived(applicationID uuid.UUID, email string, jobID *string) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

type ContactReceivedEvent struct {
	EventType  string    `json:"event_type"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ReceivedAt time.Time `json:"received_at"`
}

type ApplicationReceivedEvent struct {
	EventType     string    `json:"event_type"`
	ApplicationID uuid.UUID `json:"application_id"`
	Email         string    `json:"email"`
	JobID         *string   `json:"job_id,omitempty"`
	ReceivedAt    time.Time `json:"received_at"`
}

func (p *NatsPublisher) PublishContactReceived(name, email string) error {
	event := ContactReceivedEvent{
		EventType:  SubjectContactReceived,
		Name:       name,
		Email:      email,
		ReceivedAt: time.Now(),
	}

	return p.publish(SubjectContactReceived, event)
}

func (p *NatsPublisher) PublishApplicationReceived(applicationID uuid.UUID, email string, jobID *string) error {
	event := ApplicationReceivedEvent{
		EventType:     SubjectApplicationReceived,
		ApplicationID: applicationID,
		Email:         email,
		JobID:         jobID,
		ReceivedAt:    time.Now(),
	}

	return p.publish(SubjectApplicationReceived, event)
}

func (p *NatsPublisher) publish(subject string, event any) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		slog.Error("marshal event", "subject", subject, "error", err)
		return err
	}

	if err := p.conn.Publish(subject, eventJSON); err != nil {
		slog.Error("publish to NATS", "subject", subject, "error", err)
		return err
	}

	slog.Info("published event", "subject", subject)
	return nil
}
