package dispatcher

import (
	"context"
	"errors"
	"time"

	"github.com/faceglow/reminder-service/internal/domain"
	"github.com/faceglow/reminder-service/internal/metrics"
	"github.com/faceglow/reminder-service/internal/service"
	"github.com/faceglow/reminder-service/internal/shared/logger"
	"github.com/google/uuid"
)

// Due-time tolerance. The dispatcher is expected to run once per minute;
// a trigger gap larger than this window skips reminders, and the dedup
// window below absorbs faster or overlapping triggers.
const dueToleranceMinutes = 1

// ScheduleStore reads practice schedules
type ScheduleStore interface {
	FindActiveByDay(ctx context.Context, dayOfWeek int) ([]*domain.PracticeSchedule, error)
}

// PreferenceStore reads per-user reminder preferences
type PreferenceStore interface {
	GetByUserID(ctx context.Context, userID string) (*domain.ReminderPreferences, error)
}

// HistoryStore appends and queries the reminder send log
type HistoryStore interface {
	Create(ctx context.Context, history *domain.ReminderHistory) error
	HasRecent(ctx context.Context, scheduleID string, reminderType domain.ReminderType, since time.Time) (bool, error)
}

// TokenStore reads and prunes FCM device tokens
type TokenStore interface {
	FindByUserID(ctx context.Context, userID string) ([]*domain.FcmToken, error)
	DeleteByToken(ctx context.Context, token string) error
}

// ProfileStore resolves user email addresses
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

// EmailSender delivers one reminder email
type EmailSender interface {
	Send(ctx context.Context, to string, content service.EmailContent) error
}

// PushSender delivers one push notification to a device token
type PushSender interface {
	Send(ctx context.Context, token string, message service.PushMessage) error
}

// EventPublisher emits domain events for downstream consumers. May be nil
// when eventing is not configured.
type EventPublisher interface {
	PublishReminderDispatched(ctx context.Context, event *domain.ReminderDispatchedEvent) error
}

// Dispatcher is the single-shot reminder processor. Each run re-reads fresh
// state; nothing is cached across invocations.
type Dispatcher struct {
	schedules ScheduleStore
	prefs     PreferenceStore
	history   HistoryStore
	tokens    TokenStore
	profiles  ProfileStore
	email     EmailSender
	push      PushSender
	events    EventPublisher
	log       *logger.Logger

	now         func() time.Time
	dedupWindow time.Duration
}

// NewDispatcher creates a reminder dispatcher
func NewDispatcher(
	schedules ScheduleStore,
	prefs PreferenceStore,
	history HistoryStore,
	tokens TokenStore,
	profiles ProfileStore,
	email EmailSender,
	push PushSender,
	events EventPublisher,
	dedupWindow time.Duration,
	log *logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		schedules:   schedules,
		prefs:       prefs,
		history:     history,
		tokens:      tokens,
		profiles:    profiles,
		email:       email,
		push:        push,
		events:      events,
		log:         log,
		now:         time.Now,
		dedupWindow: dedupWindow,
	}
}

// SetClock replaces the dispatcher's clock. Intended for tests.
func (d *Dispatcher) SetClock(now func() time.Time) {
	d.now = now
}

// ProcessReminders runs one dispatch pass: fetch today's active schedules
// and process each sequentially. Only the initial schedule fetch can fail
// the run; every per-schedule error is logged and the loop continues.
func (d *Dispatcher) ProcessReminders(ctx context.Context) error {
	started := time.Now()
	defer func() {
		metrics.RunDuration.Observe(time.Since(started).Seconds())
	}()

	runID := uuid.New().String()
	now := d.now().UTC()
	current := domain.ClockTimeOf(now)
	dayOfWeek := int(now.Weekday())

	schedules, err := d.schedules.FindActiveByDay(ctx, dayOfWeek)
	if err != nil {
		d.log.Error("Failed to fetch schedules", "error", err, "run_id", runID)
		return err
	}

	metrics.SchedulesScanned.Add(float64(len(schedules)))
	if len(schedules) == 0 {
		return nil
	}

	d.log.Info("Processing schedules", "run_id", runID, "count", len(schedules), "day_of_week", dayOfWeek)

	for _, schedule := range schedules {
		if err := d.processSchedule(ctx, runID, schedule, now, current); err != nil {
			d.log.Error("Error processing schedule", "error", err, "schedule_id", schedule.ID.Hex(), "run_id", runID)
			metrics.SchedulesSkipped.WithLabelValues("error").Inc()
			continue
		}
	}

	return nil
}

// processSchedule runs the per-schedule pipeline: preferences, quiet hours,
// due time, dedup, fan-out, history. A nil return covers both "dispatched"
// and "deliberately skipped"; an error means something unexpected broke and
// the caller moves on to the next schedule.
func (d *Dispatcher) processSchedule(ctx context.Context, runID string, schedule *domain.PracticeSchedule, now time.Time, current domain.ClockTime) error {
	prefs, err := d.prefs.GetByUserID(ctx, schedule.UserID)
	if err != nil || !prefs.ReminderEnabled {
		metrics.SchedulesSkipped.WithLabelValues("preferences").Inc()
		return nil
	}

	if d.inQuietHours(current, prefs) {
		metrics.SchedulesSkipped.WithLabelValues("quiet_hours").Inc()
		return nil
	}

	startTime, err := domain.ParseClockTime(schedule.StartTime)
	if err != nil {
		d.log.Warn("Schedule has unparseable start time", "schedule_id", schedule.ID.Hex(), "start_time", schedule.StartTime)
		metrics.SchedulesSkipped.WithLabelValues("not_due").Inc()
		return nil
	}

	reminderMinutes := startTime.MinutesOfDay() - prefs.ReminderBeforeMinutes
	diff := current.MinutesOfDay() - reminderMinutes
	if diff < 0 {
		diff = -diff
	}
	if diff > dueToleranceMinutes {
		metrics.SchedulesSkipped.WithLabelValues("not_due").Inc()
		return nil
	}

	// Best-effort idempotency guard: a failed lookup proceeds rather than
	// silencing a due reminder.
	alreadySent, err := d.history.HasRecent(ctx, schedule.ID.Hex(), domain.ReminderTypeScheduled, now.Add(-d.dedupWindow))
	if err != nil {
		d.log.Warn("Dedup lookup failed, proceeding", "error", err, "schedule_id", schedule.ID.Hex())
	}
	if alreadySent {
		metrics.SchedulesSkipped.WithLabelValues("duplicate").Inc()
		return nil
	}

	channels := d.fanOut(ctx, schedule, prefs, startTime)

	// One history row per processed schedule, written even if every
	// channel attempt failed: "sent" records that dispatch was attempted.
	if err := d.history.Create(ctx, &domain.ReminderHistory{
		UserID:         schedule.UserID,
		ScheduleID:     schedule.ID.Hex(),
		Type:           domain.ReminderTypeScheduled,
		DeliveryStatus: domain.DeliveryStatusSent,
	}); err != nil {
		return err
	}

	if d.events != nil {
		event := &domain.ReminderDispatchedEvent{
			Type:       domain.EventReminderDispatched,
			RunID:      runID,
			UserID:     schedule.UserID,
			ScheduleID: schedule.ID.Hex(),
			Channels:   channels,
			Timestamp:  now,
		}
		if err := d.events.PublishReminderDispatched(ctx, event); err != nil {
			d.log.Warn("Failed to publish dispatch event", "error", err, "schedule_id", schedule.ID.Hex())
		}
	}

	d.log.Info("Reminder dispatched", "run_id", runID, "schedule_id", schedule.ID.Hex(), "user_id", schedule.UserID, "channels", channels)
	return nil
}

// inQuietHours reports whether current falls inside the user's do-not-
// disturb window. Either bound missing (or unparseable) disables the
// filter. The comparison is inclusive and does not handle windows wrapping
// midnight; see domain.ClockTime.Between.
func (d *Dispatcher) inQuietHours(current domain.ClockTime, prefs *domain.ReminderPreferences) bool {
	if prefs.QuietHoursStart == nil || prefs.QuietHoursEnd == nil {
		return false
	}

	start, err := domain.ParseClockTime(*prefs.QuietHoursStart)
	if err != nil {
		return false
	}
	end, err := domain.ParseClockTime(*prefs.QuietHoursEnd)
	if err != nil {
		return false
	}

	return current.Between(start, end)
}

// fanOut builds channel payloads and dispatches them concurrently,
// settling every attempt before returning. Returns the channels that had
// at least one attempt issued.
func (d *Dispatcher) fanOut(ctx context.Context, schedule *domain.PracticeSchedule, prefs *domain.ReminderPreferences, startTime domain.ClockTime) []string {
	displayTime := startTime.Format12()

	var tasks []task
	var channels []string

	if prefs.NotificationMethod.IncludesEmail() {
		// Email is silently not attempted when the profile lookup fails
		// or carries no address.
		if profile, err := d.profiles.GetByUserID(ctx, schedule.UserID); err == nil && profile.Email != "" {
			to := profile.Email
			content := service.GenerateReminderEmail(displayTime, schedule.DurationMinutes)
			tasks = append(tasks, task{
				Channel: "email",
				Run: func() error {
					return d.email.Send(ctx, to, content)
				},
			})
			channels = append(channels, "email")
		}
	}

	if prefs.NotificationMethod.IncludesPush() {
		tokens, err := d.tokens.FindByUserID(ctx, schedule.UserID)
		if err != nil {
			d.log.Warn("Token lookup failed", "error", err, "user_id", schedule.UserID)
		}

		if len(tokens) > 0 {
			message := service.GenerateReminderNotification(displayTime, schedule.DurationMinutes)
			for _, t := range tokens {
				token := t.Token
				tasks = append(tasks, task{
					Channel: "push",
					Token:   token,
					Run: func() error {
						return d.push.Send(ctx, token, message)
					},
				})
			}
			channels = append(channels, "push")
		}
	}

	for _, result := range settleAll(tasks) {
		if result.Err == nil {
			metrics.RemindersDispatched.WithLabelValues(result.Channel, "success").Inc()
			continue
		}

		metrics.RemindersDispatched.WithLabelValues(result.Channel, "failure").Inc()
		d.log.Error("Notification dispatch failed", "error", result.Err, "channel", result.Channel, "user_id", schedule.UserID)

		// Stale tokens are pruned so the registry heals itself.
		if result.Token != "" && errors.Is(result.Err, service.ErrInvalidToken) {
			if delErr := d.tokens.DeleteByToken(ctx, result.Token); delErr != nil {
				d.log.Error("Failed to delete invalid token", "error", delErr)
			} else {
				metrics.InvalidTokensPruned.Inc()
			}
		}
	}

	return channels
}
