// Package calendar parses and formats the zone-less calendar values stored on consultations.
//
// A consultation date is a calendar day and a consultation time is a wall-clock time of day;
// neither carries a timezone, so both are handled in UTC and never converted:
//
//	day, err := calendar.ParseDate("2025-03-14")   // 2025-03-14 00:00:00 UTC
//	clock, err := calendar.ParseClock("09:30")     // "09:30:00"
//	calendar.FormatDate(day)                       // "2025-03-14"
package calendar

import (
	"fmt"
	"strings"
	"time"

	"agendavet/shared/constant"
)

// ParseDate parses a YYYY-MM-DD calendar day.
func ParseDate(value string) (time.Time, error) {
	day, err := time.ParseInLocation(constant.DateFormat, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be formatted as YYYY-MM-DD: %w", err)
	}

	return day, nil
}

// FormatDate formats the calendar day of t without converting it to another zone.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return constant.Empty
	}

	return t.Format(constant.DateFormat)
}

// ParseClock accepts HH:MM or HH:MM:SS and returns the time of day as HH:MM:SS.
func ParseClock(value string) (string, error) {
	value = strings.TrimSpace(value)

	for _, layout := range []string{constant.TimeFormat, constant.TimeFormatLong} {
		if clock, err := time.Parse(layout, value); err == nil {
			return clock.Format(constant.TimeFormatLong), nil
		}
	}

	return constant.Empty, fmt.Errorf("time must be formatted as HH:MM or HH:MM:SS, got %q", value)
}

// FormatClock renders a stored time of day as HH:MM:SS. Drivers may hand TIME columns
// back with fractional seconds or a date prefix.
func FormatClock(value string) string {
	if idx := strings.LastIndex(value, "T"); idx >= 0 {
		value = value[idx+1:]
	}

	if len(value) > len(constant.TimeFormatLong) {
		value = value[:len(constant.TimeFormatLong)]
	}

	return value
}
