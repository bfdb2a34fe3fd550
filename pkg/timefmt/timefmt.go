package timefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultClock is applied when a request omits the wall-clock time.
const DefaultClock = "12:00 PM"

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Format converts a loose (date, clock) pair into an absolute UTC timestamp.
// The date is "YYYY-MM-DD" (or a full RFC 3339 timestamp, in which case only
// its calendar date is kept) and defaults to today's date when empty. The
// clock is 12-hour "H:MM AM/PM" and defaults to 12:00 PM when empty.
func Format(date, clock string, now time.Time) (time.Time, error) {
	day := now.UTC()
	if date != "" {
		parsed, err := parseDate(date)
		if err != nil {
			return time.Time{}, err
		}
		day = parsed
	}

	if clock == "" {
		clock = DefaultClock
	}
	hour, minute, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC), nil
}

func parseDate(date string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, date); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
}

// parseClock parses "H:MM AM/PM" into 24-hour components. The meridian is
// case-insensitive; 12 AM maps to hour 0 and 12 PM stays 12.
func parseClock(clock string) (int, int, error) {
	parts := strings.Fields(clock)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: expected \"H:MM AM/PM\"", clock)
	}

	hhmm := strings.Split(parts[0], ":")
	if len(hhmm) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: expected \"H:MM AM/PM\"", clock)
	}

	hour, err := strconv.Atoi(hhmm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("invalid time %q: hour must be 1-12", clock)
	}
	minute, err := strconv.Atoi(hhmm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q: minute must be 00-59", clock)
	}

	switch strings.ToLower(parts[1]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	default:
		return 0, 0, fmt.Errorf("invalid time %q: meridian must be AM or PM", clock)
	}

	return hour, minute, nil
}
