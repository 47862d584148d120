package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message is a Kafka message plus the metadata headers every roomstay event
// carries.
type Message struct {
	Key       string            // Partition key (room id or hotel id)
	Value     []byte            // JSON-encoded payload
	Headers   map[string]string // Message headers
	Topic     string            // Topic name
	Timestamp time.Time
}

// Header keys shared by all published events.
const (
	HeaderEventID       = "event-id"
	HeaderEventType     = "event-type"
	HeaderSchemaVersion = "schema-version"
	HeaderSource        = "source"
	HeaderTimestamp     = "timestamp"
)

// Event types.
const (
	EventBookingCreated = "booking.created"
	EventHotelCreated   = "hotel.created"
)

const schemaVersion = "1"

// MessageBuilder provides a fluent interface for building messages.
type MessageBuilder struct {
	msg Message
	err error
}

func NewMessage(eventType string) *MessageBuilder {
	now := time.Now().UTC()
	return &MessageBuilder{
		msg: Message{
			Headers: map[string]string{
				HeaderEventID:       uuid.NewString(),
				HeaderEventType:     eventType,
				HeaderSchemaVersion: schemaVersion,
				HeaderSource:        "roomstay",
				HeaderTimestamp:     now.Format(time.RFC3339),
			},
			Timestamp: now,
		},
	}
}

func (b *MessageBuilder) WithKey(key string) *MessageBuilder {
	b.msg.Key = key
	return b
}

func (b *MessageBuilder) WithPayload(payload any) *MessageBuilder {
	data, err := json.Marshal(payload)
	if err != nil {
		b.err = fmt.Errorf("failed to encode event payload: %w", err)
		return b
	}
	b.msg.Value = data
	return b
}

func (b *MessageBuilder) Build() (Message, error) {
	if b.err != nil {
		return Message{}, b.err
	}
	if b.msg.Key == "" {
		return Message{}, ErrEmptyKey
	}
	if len(b.msg.Value) == 0 {
		return Message{}, ErrEmptyValue
	}
	return b.msg, nil
}

// GetEventID returns the event-id header, empty if unset.
func (m Message) GetEventID() string {
	return m.Headers[HeaderEventID]
}

// GetEventType returns the event-type header, empty if unset.
func (m Message) GetEventType() string {
	return m.Headers[HeaderEventType]
}
