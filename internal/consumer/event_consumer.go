package consumer

import (
	"context"
	"encoding/json"

	"github.com/faceglow/reminder-service/internal/domain"
	"github.com/faceglow/reminder-service/internal/repository"
	"github.com/faceglow/reminder-service/internal/shared/logger"
	"github.com/faceglow/reminder-service/internal/shared/rabbitmq"
)

const (
	accountExchange   = "accounts"
	purgeQueue        = "reminder_account_purge"
	deletedRoutingKey = "user.deleted"
)

// EventConsumer follows account lifecycle events from the main application.
// When a user is deleted there, the reminder store purges that user's
// schedules, preferences, tokens, and profile copy.
type EventConsumer struct {
	client    *rabbitmq.RabbitMQClient
	schedules *repository.ScheduleRepository
	prefs     *repository.PreferencesRepository
	tokens    *repository.TokenRepository
	profiles  *repository.ProfileRepository
	log       *logger.Logger
}

// NewEventConsumer creates a new event consumer
func NewEventConsumer(
	client *rabbitmq.RabbitMQClient,
	schedules *repository.ScheduleRepository,
	prefs *repository.PreferencesRepository,
	tokens *repository.TokenRepository,
	profiles *repository.ProfileRepository,
	log *logger.Logger,
) *EventConsumer {
	return &EventConsumer{
		client:    client,
		schedules: schedules,
		prefs:     prefs,
		tokens:    tokens,
		profiles:  profiles,
		log:       log,
	}
}

// Start declares the queue topology and consumes until the channel closes
func (c *EventConsumer) Start() error {
	c.log.Info("Starting account event consumer", "queue", purgeQueue)

	if err := c.client.DeclareExchange(accountExchange, "topic"); err != nil {
		c.log.Error("Failed to declare exchange", "error", err)
		return err
	}

	if err := c.client.DeclareQueue(purgeQueue); err != nil {
		c.log.Error("Failed to declare queue", "error", err)
		return err
	}

	if err := c.client.BindQueue(purgeQueue, deletedRoutingKey, accountExchange); err != nil {
		c.log.Error("Failed to bind queue", "error", err)
		return err
	}

	messages, err := c.client.Consume(purgeQueue)
	if err != nil {
		c.log.Error("Failed to start consuming", "error", err)
		return err
	}

	for msg := range messages {
		var event domain.UserDeletedEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			c.log.Error("Failed to unmarshal event", "error", err)
			msg.Nack(false, false) // invalid payloads are not requeued
			continue
		}

		if event.UserID == "" {
			c.log.Warn("User deleted event missing user_id")
			msg.Nack(false, false)
			continue
		}

		ctx := context.Background()
		if err := c.purgeUser(ctx, event.UserID); err != nil {
			c.log.Error("Failed to purge user data", "error", err, "user_id", event.UserID)
			msg.Nack(false, true) // requeue for retry
			continue
		}

		msg.Ack(false)
		c.log.Info("Purged reminder data for deleted user", "user_id", event.UserID)
	}

	return nil
}

// purgeUser removes every reminder-side row owned by the user
func (c *EventConsumer) purgeUser(ctx context.Context, userID string) error {
	if err := c.schedules.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := c.prefs.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := c.tokens.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return c.profiles.DeleteByUserID(ctx, userID)
}
