package events

import (
	"encoding/json"
	"strconv"
	"time"

	"techhive-users/internal/domain/user"
)

type Envelope struct {
	EventType     string          `json:"event_type"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// NewUserEnvelope wraps a user change. Deletions carry no payload.
func NewUserEnvelope(eventType string, u user.User) (Envelope, error) {
	env := Envelope{
		EventType:     eventType,
		AggregateType: AggregateTypeUser,
		AggregateID:   strconv.Itoa(u.ID),
		OccurredAt:    time.Now().UTC(),
	}
	if eventType == EventTypeUserDeleted {
		return env, nil
	}
	payload, err := json.Marshal(u)
	if err != nil {
		return Envelope{}, err
	}
	env.Payload = payload
	return env, nil
}
