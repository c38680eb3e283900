package handler

import (
	"net/http"

	"github.com/faceglow/reminder-service/internal/domain"
	"github.com/faceglow/reminder-service/internal/repository"
	"github.com/faceglow/reminder-service/internal/shared/errors"
	"github.com/faceglow/reminder-service/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// HistoryHandler handles HTTP requests for the reminder history log
type HistoryHandler struct {
	repo *repository.HistoryRepository
	log  *logger.Logger
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(repo *repository.HistoryRepository, log *logger.Logger) *HistoryHandler {
	return &HistoryHandler{
		repo: repo,
		log:  log,
	}
}

// GetHistory pages through a user's reminder history, newest first
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	var req domain.GetHistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("Invalid request", err))
		return
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	history, total, err := h.repo.FindByUserID(c.Request.Context(), req.UserID, page, pageSize)
	if err != nil {
		h.log.Error("Failed to get history", "error", err, "user_id", req.UserID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to get history", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      history,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
