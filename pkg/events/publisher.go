package events

import (
	"context"

	"roomstay/pkg/kafka"
)

// Publisher is the event sink the services write lifecycle events to.
// *kafka.Producer satisfies it; when no brokers are configured the services
// get Noop() and the engine runs standalone.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, kafka.Message) error { return nil }

func Noop() Publisher {
	return noopPublisher{}
}
