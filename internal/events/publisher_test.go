package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/atulv2861/seven-healer-backend/internal/events"
)

func TestContactReceivedEvent_Marshal(t *testing.T) {
	ev := events.ContactReceivedEvent{
		EventType:  events.SubjectContactReceived,
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		ReceivedAt: time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "contact.received", decoded["event_type"])
	require.Equal(t, "jane@example.com", decoded["email"])
}

func TestApplicationReceivedEvent_Marshal(t *testing.T) {
	jobID := "JD-0028"
	ev := events.ApplicationReceivedEvent{
		EventType:     events.SubjectApplicationReceived,
		ApplicationID: uuid.New(),
		Email:         "jane@example.com",
		JobID:         &jobID,
		ReceivedAt:    time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "application.received", decoded["event_type"])
	require.Equal(t, "JD-0028", decoded["job_id"])
}

func TestApplicationReceivedEvent_Marshal_OmitsNilJobID(t *testing.T) {
	ev := events.ApplicationReceivedEvent{
		EventType:     events.SubjectApplicationReceived,
		ApplicationID: uuid.New(),
		Email:         "jane@example.com",
		ReceivedAt:    time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	_, ok := decoded["job_id"]
	require.False(t, ok)
}
