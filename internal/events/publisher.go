package events

import (
	"context"
	"encoding/json"

	"github.com/faceglow/reminder-service/internal/domain"
	"github.com/faceglow/reminder-service/internal/shared/logger"
	"github.com/faceglow/reminder-service/internal/shared/rabbitmq"
)

const (
	reminderExchange   = "reminders"
	dispatchRoutingKey = "reminder.dispatched"
)

// Publisher emits reminder domain events to RabbitMQ for downstream
// consumers (analytics, the app's realtime feeds). Publishing is
// best-effort; a failed publish never affects dispatch.
type Publisher struct {
	client *rabbitmq.RabbitMQClient
	log    *logger.Logger
}

// NewPublisher creates an event publisher and declares its exchange
func NewPublisher(client *rabbitmq.RabbitMQClient, log *logger.Logger) (*Publisher, error) {
	if err := client.DeclareExchange(reminderExchange, "topic"); err != nil {
		return nil, err
	}

	return &Publisher{client: client, log: log}, nil
}

// PublishReminderDispatched publishes a reminder.dispatched event
func (p *Publisher) PublishReminderDispatched(ctx context.Context, event *domain.ReminderDispatchedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, reminderExchange, dispatchRoutingKey, body)
}
