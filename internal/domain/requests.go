package domain

// CreateScheduleRequest creates a weekly practice slot
type CreateScheduleRequest struct {
	UserID          string `json:"user_id" binding:"required"`
	DayOfWeek       *int   `json:"day_of_week" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	IsActive        *bool  `json:"is_active"`
}

// UpdateScheduleRequest updates an existing practice slot
type UpdateScheduleRequest struct {
	DayOfWeek       *int    `json:"day_of_week"`
	StartTime       *string `json:"start_time"`
	DurationMinutes *int    `json:"duration_minutes"`
	IsActive        *bool   `json:"is_active"`
}

// UpdatePreferencesRequest replaces a user's reminder preferences
type UpdatePreferencesRequest struct {
	ReminderEnabled       bool               `json:"reminder_enabled"`
	ReminderBeforeMinutes int                `json:"reminder_before_minutes" binding:"min=0"`
	NotificationMethod    NotificationMethod `json:"notification_method" binding:"required,oneof=email push both"`
	QuietHoursStart       *string            `json:"quiet_hours_start"`
	QuietHoursEnd         *string            `json:"quiet_hours_end"`
}

// RegisterTokenRequest registers a device token for push notifications
type RegisterTokenRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Token  string `json:"token" binding:"required"`
}

// GetHistoryRequest pages through a user's reminder history
type GetHistoryRequest struct {
	UserID   string `form:"user_id" binding:"required"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
