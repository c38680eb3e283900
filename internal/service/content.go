package service

import (
	"fmt"
	"strconv"
)

// EmailContent is a rendered reminder email
type EmailContent struct {
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// PushNotification is the visible part of a push message
type PushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PushMessage is a rendered reminder push notification. Data carries
// machine-readable fields as strings for client-side routing.
type PushMessage struct {
	Notification PushNotification  `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

// GenerateReminderEmail builds the reminder email for a practice session.
// scheduledTime is the display form of the start time, e.g. "9:00 AM".
func GenerateReminderEmail(scheduledTime string, durationMinutes int) EmailContent {
	subject := "Your Face Yoga Practice Reminder"

	text := fmt.Sprintf(`Your face yoga practice session is coming up!

Time: %s
Duration: %d minutes

Remember to:
- Find a quiet, comfortable space
- Have a mirror ready if needed
- Keep water nearby
- Take deep breaths and stay relaxed

See you in practice!`, scheduledTime, durationMinutes)

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #2b6cb0;">Your Face Yoga Practice Reminder</h2>

  <p style="font-size: 16px;">Your face yoga practice session is coming up!</p>

  <div style="background-color: #f7fafc; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <p style="margin: 0;">
      <strong>Time:</strong> %s<br>
      <strong>Duration:</strong> %d minutes
    </p>
  </div>

  <h3 style="color: #4a5568;">Remember to:</h3>
  <ul style="list-style-type: none; padding-left: 0;">
    <li style="margin-bottom: 8px;">&#10024; Find a quiet, comfortable space</li>
    <li style="margin-bottom: 8px;">&#129704; Have a mirror ready if needed</li>
    <li style="margin-bottom: 8px;">&#128167; Keep water nearby</li>
    <li style="margin-bottom: 8px;">&#129496; Take deep breaths and stay relaxed</li>
  </ul>

  <p style="font-size: 18px; color: #2b6cb0; margin-top: 30px;">See you in practice!</p>
</body>
</html>`, subject, scheduledTime, durationMinutes)

	return EmailContent{Subject: subject, Text: text, HTML: html}
}

// GenerateReminderNotification builds the reminder push message for a
// practice session.
func GenerateReminderNotification(scheduledTime string, durationMinutes int) PushMessage {
	return PushMessage{
		Notification: PushNotification{
			Title: "Face Yoga Practice Reminder",
			Body:  fmt.Sprintf("Your %d-minute practice session starts at %s", durationMinutes, scheduledTime),
		},
		Data: map[string]string{
			"type":            "practice_reminder",
			"scheduledTime":   scheduledTime,
			"durationMinutes": strconv.Itoa(durationMinutes),
		},
	}
}
