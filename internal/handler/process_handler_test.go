package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/faceglow/reminder-service/internal/shared/logger"
)

type stubProcessor struct {
	err   error
	calls int
}

func (p *stubProcessor) ProcessReminders(ctx context.Context) error {
	p.calls++
	return p.err
}

func setupProcessRouter(p *stubProcessor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewProcessHandler(p, logger.NewLogger())
	router.POST("/api/v1/reminders/process", h.Process)
	return router
}

func TestProcessHandler_Success(t *testing.T) {
	p := &stubProcessor{}
	router := setupProcessRouter(p)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders/process", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if p.calls != 1 {
		t.Errorf("processor calls = %d, want 1", p.calls)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["message"] != "Reminders processed successfully" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestProcessHandler_RunFailure(t *testing.T) {
	p := &stubProcessor{err: errors.New("database unavailable")}
	router := setupProcessRouter(p)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders/process", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] != "database unavailable" {
		t.Errorf("error = %q, want the run error surfaced", body["error"])
	}
}
