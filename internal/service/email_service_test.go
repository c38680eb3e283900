package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/faceglow/reminder-service/internal/shared/config"
	"github.com/faceglow/reminder-service/internal/shared/errors"
	"github.com/faceglow/reminder-service/internal/shared/logger"
)

func TestEmailService_Send(t *testing.T) {
	var gotAuth string
	var gotBody resendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewEmailService(config.EmailConfig{
		APIKey:      "re_test_key",
		SenderEmail: "practice@faceglow.app",
		APIURL:      srv.URL,
	}, logger.NewLogger())

	content := GenerateReminderEmail("9:00 AM", 30)
	if err := svc.Send(context.Background(), "user@example.com", content); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if gotAuth != "Bearer re_test_key" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotBody.From != "practice@faceglow.app" {
		t.Errorf("From = %q", gotBody.From)
	}
	if gotBody.To != "user@example.com" {
		t.Errorf("To = %q", gotBody.To)
	}
	if gotBody.Subject != "Your Face Yoga Practice Reminder" {
		t.Errorf("Subject = %q", gotBody.Subject)
	}
}

func TestEmailService_Send_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"name":"validation_error","message":"Invalid to address"}`))
	}))
	defer srv.Close()

	svc := NewEmailService(config.EmailConfig{
		APIKey:      "re_test_key",
		SenderEmail: "practice@faceglow.app",
		APIURL:      srv.URL,
	}, logger.NewLogger())

	err := svc.Send(context.Background(), "not-an-address", GenerateReminderEmail("9:00 AM", 30))
	if err == nil {
		t.Fatal("Send() should fail on non-2xx response")
	}
	if !strings.Contains(err.Error(), "Invalid to address") {
		t.Errorf("error should embed the provider body, got %v", err)
	}
}

func TestEmailService_Send_MissingConfiguration(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.EmailConfig
	}{
		{
			name: "missing API key",
			cfg:  config.EmailConfig{SenderEmail: "practice@faceglow.app"},
		},
		{
			name: "missing sender",
			cfg:  config.EmailConfig{APIKey: "re_test_key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEmailService(tt.cfg, logger.NewLogger())
			err := svc.Send(context.Background(), "user@example.com", GenerateReminderEmail("9:00 AM", 30))

			var appErr *errors.AppError
			if !stderrors.As(err, &appErr) || appErr.Code != "CONFIGURATION_ERROR" {
				t.Errorf("Send() error = %v, want configuration error", err)
			}
		})
	}
}
