package service

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/faceglow/reminder-service/internal/shared/config"
	"github.com/faceglow/reminder-service/internal/shared/errors"
	"github.com/faceglow/reminder-service/internal/shared/logger"
)

// ErrInvalidToken marks a push failure caused by an unregistered or invalid
// device token. Callers use it to prune the stale token row.
var ErrInvalidToken = stderrors.New("invalid registration token")

// PushService sends push notifications through the FCM legacy HTTP API
type PushService struct {
	config config.PushConfig
	client *http.Client
	log    *logger.Logger
}

// NewPushService creates a new push service
func NewPushService(cfg config.PushConfig, log *logger.Logger) *PushService {
	return &PushService{
		config: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

type fcmRequest struct {
	To           string            `json:"to"`
	Notification PushNotification  `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type fcmErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Send sends one push notification to a device token. Missing provider
// configuration is an error per attempt. An invalid-token provider response
// is translated into ErrInvalidToken.
func (s *PushService) Send(ctx context.Context, token string, message PushMessage) error {
	if s.config.ServerKey == "" {
		return errors.NewConfigurationError("Firebase server key missing", nil)
	}

	body, err := json.Marshal(fcmRequest{
		To:           token,
		Notification: message.Notification,
		Data:         message.Data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "key="+s.config.ServerKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		var fcmErr fcmErrorResponse
		if jsonErr := json.Unmarshal(errBody, &fcmErr); jsonErr == nil &&
			fcmErr.Error.Code == "messaging/invalid-registration-token" {
			return ErrInvalidToken
		}

		return fmt.Errorf("FCM API error: %s", string(errBody))
	}

	return nil
}
