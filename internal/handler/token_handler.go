package handler

import (
	"net/http"

	"github.com/faceglow/reminder-service/internal/domain"
	"github.com/faceglow/reminder-service/internal/repository"
	"github.com/faceglow/reminder-service/internal/shared/errors"
	"github.com/faceglow/reminder-service/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// TokenHandler handles HTTP requests for FCM device tokens
type TokenHandler struct {
	repo *repository.TokenRepository
	log  *logger.Logger
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(repo *repository.TokenRepository, log *logger.Logger) *TokenHandler {
	return &TokenHandler{
		repo: repo,
		log:  log,
	}
}

// RegisterToken registers a device token for push notifications
func (h *TokenHandler) RegisterToken(c *gin.Context) {
	var req domain.RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.NewValidationError("Invalid request", err))
		return
	}

	token := &domain.FcmToken{
		UserID: req.UserID,
		Token:  req.Token,
	}

	if err := h.repo.Register(c.Request.Context(), token); err != nil {
		h.log.Error("Failed to register token", "error", err, "user_id", req.UserID)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to register token", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Token registered"})
}

// DeleteToken removes a device token registration
func (h *TokenHandler) DeleteToken(c *gin.Context) {
	token := c.Param("token")

	if err := h.repo.DeleteByToken(c.Request.Context(), token); err != nil {
		h.log.Error("Failed to delete token", "error", err)
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("Failed to delete token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token deleted"})
}
