package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationMethod_Channels(t *testing.T) {
	tests := []struct {
		method    NotificationMethod
		wantEmail bool
		wantPush  bool
	}{
		{NotificationMethodEmail, true, false},
		{NotificationMethodPush, false, true},
		{NotificationMethodBoth, true, true},
		{NotificationMethod(""), false, false},
		{NotificationMethod("sms"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			assert.Equal(t, tt.wantEmail, tt.method.IncludesEmail())
			assert.Equal(t, tt.wantPush, tt.method.IncludesPush())
		})
	}
}

// The event payload is a bus contract; downstream consumers key on these
// field names.
func TestReminderDispatchedEvent_Payload(t *testing.T) {
	event := ReminderDispatchedEvent{
		Type:       EventReminderDispatched,
		RunID:      "run-1",
		UserID:     "user-1",
		ScheduleID: "sched-1",
		Channels:   []string{"email", "push"},
		Timestamp:  time.Date(2026, 3, 2, 8, 45, 0, 0, time.UTC),
	}

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "reminder.dispatched", decoded["type"])
	assert.Equal(t, "run-1", decoded["run_id"])
	assert.Equal(t, "user-1", decoded["user_id"])
	assert.Equal(t, "sched-1", decoded["schedule_id"])
	assert.Len(t, decoded["channels"], 2)
}

func TestUserDeletedEvent_Decode(t *testing.T) {
	var event UserDeletedEvent
	require.NoError(t, json.Unmarshal(
		[]byte(`{"type":"user.deleted","user_id":"user-1"}`), &event))

	assert.Equal(t, EventUserDeleted, event.Type)
	assert.Equal(t, "user-1", event.UserID)
}
