package handler

import (
	"net/http"

	"github.com/faceglow/reminder-service/internal/domain"
	"github.com/faceglow/reminder-service/internal/repository"
	"github.com/faceglow/reminder-service/internal/shared/errors"
	"github.com/faceglow/reminder-service/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// PreferencesHandler handles HTTP requests for reminder preferences
type PreferencesHandler struct {
	repo *repository.PreferencesRepository
	log  *logger.Logger
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(repo *repository.PreferencesRepository, log *logger.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		repo: repo,
		log:  log,
	}
}

// GetPreferences retrieves a user's reminder preferences. A user with no
// row has reminders off; that absence is a 404, not a default.
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID := c.Param("user_id")

	prefs, err := h.repo.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, errors.NewNotFoundError("Preferences not found", err))
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences creates or replaces a user's reminder preferences
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	userID := c.Param("user_id")

	var req domain.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("Invalid request", err))
		return
	}

	// Quiet hours come as a pair or not at all
	if (req.QuietHoursStart == nil) != (req.QuietHoursEnd == nil) {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("quiet_hours_start and quiet_hours_end must be set together", nil))
		return
	}
	for _, v := range []*string{req.QuietHoursStart, req.QuietHoursEnd} {
		if v == nil {
			continue
		}
		if _, err := domain.ParseClockTime(*v); err != nil {
			c.JSON(http.StatusBadRequest, errors.NewValidationError("quiet hours must be HH:MM", err))
			return
		}
	}

	prefs := &domain.ReminderPreferences{
		UserID:                userID,
		ReminderEnabled:       req.ReminderEnabled,
		ReminderBeforeMinutes: req.ReminderBeforeMinutes,
		NotificationMethod:    req.NotificationMethod,
		QuietHoursStart:       req.QuietHoursStart,
		QuietHoursEnd:         req.QuietHoursEnd,
	}

	if err := h.repo.Upsert(c.Request.Context(), prefs); err != nil {
		h.log.Error("Failed to update preferences", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to update preferences", err))
		return
	}

	c.JSON(http.StatusOK, prefs)
}
