package telemetry

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
)

// Event is the payload delivered to sinks.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// NewEvent constructs an Event. occurredAt is normalized to UTC.
func NewEvent(id, typ string, occurredAt time.Time, data any) Event {
	return Event{
		ID:         id,
		Type:       typ,
		OccurredAt: occurredAt.UTC(),
		Data:       data,
	}
}

// Marshal encodes the event as JSON.
func (e Event) Marshal() ([]byte, error) {
	b, err := sonic.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return b, nil
}

// attributes are attached as message metadata by queue and topic sinks.
func (e Event) attributes() map[string]string {
	return map[string]string{
		"event_id":      e.ID,
		"endpoint_type": e.Type,
	}
}
