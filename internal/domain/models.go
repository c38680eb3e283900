package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationMethod selects the delivery channels for a user's reminders
type NotificationMethod string

const (
	NotificationMethodEmail NotificationMethod = "email"
	NotificationMethodPush  NotificationMethod = "push"
	NotificationMethodBoth  NotificationMethod = "both"
)

// IncludesEmail reports whether the email channel applies
func (m NotificationMethod) IncludesEmail() bool {
	return m == NotificationMethodEmail || m == NotificationMethodBoth
}

// IncludesPush reports whether the push channel applies
func (m NotificationMethod) IncludesPush() bool {
	return m == NotificationMethodPush || m == NotificationMethodBoth
}

// ReminderType classifies reminder history entries
type ReminderType string

const (
	ReminderTypeScheduled ReminderType = "scheduled"
)

// DeliveryStatus records the outcome of a dispatch attempt. "sent" means
// dispatch was attempted, not that delivery was confirmed.
type DeliveryStatus string

const (
	DeliveryStatusSent DeliveryStatus = "sent"
)

// PracticeSchedule is a user's weekly practice slot. Created and edited by
// the schedule management API; read-only to the dispatcher.
type PracticeSchedule struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID          string             `json:"user_id" bson:"user_id"`
	DayOfWeek       int                `json:"day_of_week" bson:"day_of_week"` // 0-6, Sunday=0
	StartTime       string             `json:"start_time" bson:"start_time"`   // "HH:MM" wall clock
	DurationMinutes int                `json:"duration_minutes" bson:"duration_minutes"`
	IsActive        bool               `json:"is_active" bson:"is_active"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// ReminderPreferences is a user's reminder configuration, one row per user.
// A missing row or ReminderEnabled=false excludes the user from dispatch.
type ReminderPreferences struct {
	ID                    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID                string             `json:"user_id" bson:"user_id"`
	ReminderEnabled       bool               `json:"reminder_enabled" bson:"reminder_enabled"`
	ReminderBeforeMinutes int                `json:"reminder_before_minutes" bson:"reminder_before_minutes"`
	NotificationMethod    NotificationMethod `json:"notification_method" bson:"notification_method"`
	QuietHoursStart       *string            `json:"quiet_hours_start,omitempty" bson:"quiet_hours_start,omitempty"` // "HH:MM"
	QuietHoursEnd         *string            `json:"quiet_hours_end,omitempty" bson:"quiet_hours_end,omitempty"`     // "HH:MM"
	CreatedAt             time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at" bson:"updated_at"`
}

// ReminderHistory is an append-only log of dispatch attempts, used for
// deduplication and audit. Never updated or deleted by the dispatcher.
type ReminderHistory struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID         string             `json:"user_id" bson:"user_id"`
	ScheduleID     string             `json:"schedule_id" bson:"schedule_id"`
	Type           ReminderType       `json:"type" bson:"type"`
	DeliveryStatus DeliveryStatus     `json:"delivery_status" bson:"delivery_status"`
	SentAt         time.Time          `json:"sent_at" bson:"sent_at"`
}

// FcmToken is a device registration for push notifications. Zero or more
// per user; stale tokens are pruned when a push attempt reports them invalid.
type FcmToken struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	Token     string             `json:"token" bson:"token"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// Profile is the external user record. The dispatcher only reads the email.
type Profile struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID   string             `json:"user_id" bson:"user_id"`
	Email    string             `json:"email" bson:"email"`
	FullName string             `json:"full_name,omitempty" bson:"full_name,omitempty"`
}

// EventType represents the type of a domain event on the message bus
type EventType string

const (
	EventReminderDispatched EventType = "reminder.dispatched"
	EventUserDeleted        EventType = "user.deleted"
)

// ReminderDispatchedEvent is published after a schedule's reminder has been
// recorded, for downstream consumers (analytics, realtime feeds).
type ReminderDispatchedEvent struct {
	Type       EventType `json:"type"`
	RunID      string    `json:"run_id"`
	UserID     string    `json:"user_id"`
	ScheduleID string    `json:"schedule_id"`
	Channels   []string  `json:"channels"`
	Timestamp  time.Time `json:"timestamp"`
}

// UserDeletedEvent is consumed from the main application when an account is
// removed; the reminder store purges the user's rows in response.
type UserDeletedEvent struct {
	Type      EventType `json:"type"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}
