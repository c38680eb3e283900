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

func newTestPushService(url string) *PushService {
	return NewPushService(config.PushConfig{
		ServerKey: "server-key",
		APIURL:    url,
	}, logger.NewLogger())
}

func TestPushService_Send(t *testing.T) {
	var gotAuth string
	var gotBody fcmRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := newTestPushService(srv.URL)
	message := GenerateReminderNotification("2:30 PM", 45)

	if err := svc.Send(context.Background(), "device-token-1", message); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if gotAuth != "key=server-key" {
		t.Errorf("Authorization = %q, want key=server-key", gotAuth)
	}
	if gotBody.To != "device-token-1" {
		t.Errorf("To = %q, want device-token-1", gotBody.To)
	}
	if gotBody.Notification.Title != "Face Yoga Practice Reminder" {
		t.Errorf("Title = %q", gotBody.Notification.Title)
	}
	if gotBody.Data["durationMinutes"] != "45" {
		t.Errorf("Data durationMinutes = %q, want \"45\"", gotBody.Data["durationMinutes"])
	}
}

func TestPushService_Send_InvalidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"messaging/invalid-registration-token","message":"Invalid registration token"}}`))
	}))
	defer srv.Close()

	svc := newTestPushService(srv.URL)
	err := svc.Send(context.Background(), "stale-token", GenerateReminderNotification("2:30 PM", 45))

	if !stderrors.Is(err, ErrInvalidToken) {
		t.Errorf("Send() error = %v, want ErrInvalidToken", err)
	}
}

func TestPushService_Send_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"messaging/internal-error","message":"Internal error"}}`))
	}))
	defer srv.Close()

	svc := newTestPushService(srv.URL)
	err := svc.Send(context.Background(), "device-token-1", GenerateReminderNotification("2:30 PM", 45))

	if err == nil {
		t.Fatal("Send() should fail on non-2xx response")
	}
	if stderrors.Is(err, ErrInvalidToken) {
		t.Error("a non-token provider error must not be treated as invalid token")
	}
	if !strings.Contains(err.Error(), "FCM API error") {
		t.Errorf("error = %v, want FCM API error", err)
	}
}

func TestPushService_Send_MissingServerKey(t *testing.T) {
	svc := NewPushService(config.PushConfig{APIURL: "http://localhost:0"}, logger.NewLogger())
	err := svc.Send(context.Background(), "device-token-1", GenerateReminderNotification("2:30 PM", 45))

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != "CONFIGURATION_ERROR" {
		t.Errorf("Send() error = %v, want configuration error", err)
	}
}
