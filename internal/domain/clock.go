package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a naive wall-clock time of day ("HH:MM"). Schedule start
// times and quiet-hour bounds are stored as strings with no date or zone
// attached; only time-of-day ordering is meaningful.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:MM" (or "HH:MM:SS", seconds ignored)
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("invalid hour in clock time %q", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid minute in clock time %q", s)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

// ClockTimeOf extracts the UTC wall-clock time of an instant
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.UTC().Hour(), Minute: t.UTC().Minute()}
}

// MinutesOfDay returns minutes elapsed since 00:00
func (c ClockTime) MinutesOfDay() int {
	return c.Hour*60 + c.Minute
}

// Between reports whether c falls within [start, end] inclusive, comparing
// minutes-of-day on the same synthetic day. A window that wraps midnight
// (start > end) never matches; quiet hours configured that way silently do
// not suppress. Known limitation, kept pending product clarification.
func (c ClockTime) Between(start, end ClockTime) bool {
	cur := c.MinutesOfDay()
	return cur >= start.MinutesOfDay() && cur <= end.MinutesOfDay()
}

// Format12 renders the time in 12-hour display form, e.g. "9:00 AM"
func (c ClockTime) Format12() string {
	t := time.Date(1970, time.January, 1, c.Hour, c.Minute, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// String renders the time as "HH:MM"
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
