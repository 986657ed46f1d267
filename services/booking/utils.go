package booking

import (
	"fmt"
	"strings"
	"time"

	"medibook/utils"
)

var displayTimeLayouts = []string{"3:04 PM", "3:04PM", "15:04"}

// FormatMinutes renders minutes since midnight as "h:mm AM/PM", e.g. 570 -> "9:30 AM".
func FormatMinutes(minute int) string {
	hour, mins := minute/60, minute%60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, mins, suffix)
}

// ParseDisplayTime accepts "10:00 AM", "02:00 PM" or "14:00" and returns minutes since midnight.
func ParseDisplayTime(s string) (int, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range displayTimeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("invalid time %q", s)
}

// ParseDate parses a "YYYY-MM-DD" calendar date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(utils.DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SlotStart returns the wall-clock instant a slot begins.
func SlotStart(date string, startMinute int, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), startMinute/60, startMinute%60, 0, 0, loc), nil
}
