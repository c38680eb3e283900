package handler

import (
	"net/http"

	"github.com/faceglow/reminder-service/internal/domain"
	"github.com/faceglow/reminder-service/internal/repository"
	"github.com/faceglow/reminder-service/internal/shared/errors"
	"github.com/faceglow/reminder-service/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles HTTP requests for practice schedules
type ScheduleHandler struct {
	repo *repository.ScheduleRepository
	log  *logger.Logger
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(repo *repository.ScheduleRepository, log *logger.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		repo: repo,
		log:  log,
	}
}

// GetSchedules lists a user's practice schedules
func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("user_id is required", nil))
		return
	}

	schedules, err := h.repo.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to get schedules", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to get schedules", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": schedules})
}

// CreateSchedule creates a practice schedule
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req domain.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("Invalid request", err))
		return
	}

	if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("day_of_week must be 0-6 (Sunday=0)", nil))
		return
	}
	startTime, err := domain.ParseClockTime(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("start_time must be HH:MM", err))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	schedule := &domain.PracticeSchedule{
		UserID:          req.UserID,
		DayOfWeek:       *req.DayOfWeek,
		StartTime:       startTime.String(),
		DurationMinutes: req.DurationMinutes,
		IsActive:        isActive,
	}

	if err := h.repo.Create(c.Request.Context(), schedule); err != nil {
		h.log.Error("Failed to create schedule", "error", err, "user_id", req.UserID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to create schedule", err))
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// UpdateSchedule updates a practice schedule
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id := c.Param("id")

	var req domain.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("Invalid request", err))
		return
	}

	schedule, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, errors.NewNotFoundError("Schedule not found", err))
		return
	}

	if req.DayOfWeek != nil {
		if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
			c.JSON(http.StatusBadRequest, errors.NewValidationError("day_of_week must be 0-6 (Sunday=0)", nil))
			return
		}
		schedule.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		startTime, err := domain.ParseClockTime(*req.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, errors.NewValidationError("start_time must be HH:MM", err))
			return
		}
		schedule.StartTime = startTime.String()
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < 1 {
			c.JSON(http.StatusBadRequest, errors.NewValidationError("duration_minutes must be positive", nil))
			return
		}
		schedule.DurationMinutes = *req.DurationMinutes
	}
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}

	if err := h.repo.Update(c.Request.Context(), schedule); err != nil {
		h.log.Error("Failed to update schedule", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to update schedule", err))
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule deletes a practice schedule
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id := c.Param("id")

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to delete schedule", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to delete schedule", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}
