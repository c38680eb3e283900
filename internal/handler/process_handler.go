package handler

import (
	"context"
	"net/http"

	"github.com/faceglow/reminder-service/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// ReminderProcessor runs one dispatch pass
type ReminderProcessor interface {
	ProcessReminders(ctx context.Context) error
}

// ProcessHandler exposes the dispatcher as an HTTP endpoint for external
// cron triggers
type ProcessHandler struct {
	processor ReminderProcessor
	log       *logger.Logger
}

// NewProcessHandler creates a new process handler
func NewProcessHandler(processor ReminderProcessor, log *logger.Logger) *ProcessHandler {
	return &ProcessHandler{
		processor: processor,
		log:       log,
	}
}

// Process runs one reminder dispatch pass. The request body is ignored;
// any failure reported here means the initial schedule fetch failed —
// per-schedule errors are absorbed inside the run.
func (h *ProcessHandler) Process(c *gin.Context) {
	if err := h.processor.ProcessReminders(c.Request.Context()); err != nil {
		h.log.Error("Reminder run failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reminders processed successfully",
	})
}
