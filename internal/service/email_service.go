package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/faceglow/reminder-service/internal/shared/config"
	"github.com/faceglow/reminder-service/internal/shared/errors"
	"github.com/faceglow/reminder-service/internal/shared/logger"
)

// EmailService sends transactional email through the Resend HTTP API
type EmailService struct {
	config config.EmailConfig
	client *http.Client
	log    *logger.Logger
}

// NewEmailService creates a new email service
func NewEmailService(cfg config.EmailConfig, log *logger.Logger) *EmailService {
	return &EmailService{
		config: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

type resendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// Send sends one reminder email. Missing provider configuration is an
// error per attempt, absorbed by the dispatcher's per-notification handling.
func (s *EmailService) Send(ctx context.Context, to string, content EmailContent) error {
	if s.config.APIKey == "" || s.config.SenderEmail == "" {
		return errors.NewConfigurationError("Resend configuration missing", nil)
	}

	body, err := json.Marshal(resendRequest{
		From:    s.config.SenderEmail,
		To:      to,
		Subject: content.Subject,
		Text:    content.Text,
		HTML:    content.HTML,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("Resend API error: %s", string(errBody))
	}

	return nil
}
