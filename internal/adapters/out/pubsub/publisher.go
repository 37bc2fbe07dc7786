// Package pubsub publishes integration events of the sales service.
package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"cloud.google.com/go/pubsub"
)

// PubSubEventPublisher publishes JSON encoded events to Google Cloud Pub/Sub topics.
// Topic handles are created on first use and reused afterwards.
type PubSubEventPublisher struct {
	client  *pubsub.Client
	marshal func(any) ([]byte, error)

	mu     sync.Mutex
	topics map[string]*pubsub.Topic
}

// NewPubSubEventPublisher creates a publisher over client. The topics must exist.
func NewPubSubEventPublisher(client *pubsub.Client) (*PubSubEventPublisher, error) {
	if client == nil {
		return nil, errors.New("pubsub event publisher: client is required")
	}
	return &PubSubEventPublisher{
		client:  client,
		marshal: json.Marshal,
		topics:  make(map[string]*pubsub.Topic),
	}, nil
}

// Publish encodes payload as JSON and waits until the server acknowledged the message.
func (p *PubSubEventPublisher) Publish(ctx context.Context, topic string, payload any) error {
	data, err := p.marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}

	result := p.topic(topic).Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: map[string]string{"content_type": "application/json"},
	})
	if _, err = result.Get(ctx); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}
	return nil
}

// Close flushes pending messages of every topic in use.
func (p *PubSubEventPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, t := range p.topics {
		t.Stop()
	}
	clear(p.topics)
}

func (p *PubSubEventPublisher) topic(name string) *pubsub.Topic {
	p.mu.Lock()
	defer p.mu.Unlock()

	t, ok := p.topics[name]
	if !ok {
		t = p.client.Topic(name)
		p.topics[name] = t
	}
	return t
}

// LogEventPublisher writes events to the log instead of a broker.
// It is used when no Pub/Sub project is configured.
type LogEventPublisher struct {
	logger *slog.Logger
}

func NewLogEventPublisher(logger *slog.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger.With("component", "LogEventPublisher")}
}

func (p *LogEventPublisher) Publish(ctx context.Context, topic string, payload any) error {
	p.logger.InfoContext(ctx, "Event published", "topic", topic, "payload", payload)
	return nil
}
