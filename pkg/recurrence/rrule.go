// Package recurrence builds and expands iCalendar RRULE strings for
// care-task series. Generation is pure string work so tests can pin
// exact output; expansion is delegated to rrule-go with DTSTART kept
// in the series zone, so wall-clock time re-derives per occurrence
// across DST instead of drifting by a fixed UTC offset.
package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Two-letter iCalendar weekday codes, Monday first.
var validWeekday = map[string]bool{
	"MO": true, "TU": true, "WE": true, "TH": true, "FR": true, "SA": true, "SU": true,
}

// DailyRRule returns FREQ=DAILY;INTERVAL=n. interval < 1 is a caller
// contract violation and fails fast.
func DailyRRule(interval int) (string, error) {
	if interval < 1 {
		return "", fmt.Errorf("recurrence: interval must be >= 1, got %d", interval)
	}
	return fmt.Sprintf("FREQ=DAILY;INTERVAL=%d", interval), nil
}

// WeeklyRRule returns FREQ=WEEKLY;INTERVAL=n;BYDAY=... with the BYDAY
// clause preserving the caller's weekday order.
func WeeklyRRule(weekdays []string, interval int) (string, error) {
	if interval < 1 {
		return "", fmt.Errorf("recurrence: interval must be >= 1, got %d", interval)
	}
	if len(weekdays) == 0 {
		return "", errors.New("recurrence: weekly rule requires at least one weekday")
	}
	for _, wd := range weekdays {
		if !validWeekday[wd] {
			return "", fmt.Errorf("recurrence: unknown weekday code %q", wd)
		}
	}
	return fmt.Sprintf("FREQ=WEEKLY;INTERVAL=%d;BYDAY=%s", interval, strings.Join(weekdays, ",")), nil
}

func parse(rule string, dtstart time.Time) (*rrule.RRule, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("recurrence: parse %q: %w", rule, err)
	}
	opt.Dtstart = dtstart
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("recurrence: build %q: %w", rule, err)
	}
	return r, nil
}

// Occurrences expands rule anchored at dtstart (zone-aware) into all
// occurrences in [from, to], inclusive.
func Occurrences(rule string, dtstart, from, to time.Time) ([]time.Time, error) {
	r, err := parse(rule, dtstart)
	if err != nil {
		return nil, err
	}
	return r.Between(from, to, true), nil
}

// NextAfter returns the first occurrence at or after t. ok is false
// when the rule yields nothing.
func NextAfter(rule string, dtstart, t time.Time) (time.Time, bool, error) {
	r, err := parse(rule, dtstart)
	if err != nil {
		return time.Time{}, false, err
	}
	next := r.After(t, true)
	if next.IsZero() {
		return time.Time{}, false, nil
	}
	return next, true, nil
}
