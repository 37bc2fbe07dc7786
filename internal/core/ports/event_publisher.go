package ports

import "context"

// EventPublisher delivers integration events to other services.
// payload is encoded by the implementation.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}
