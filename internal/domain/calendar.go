package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the format of week keys.
const DateLayout = "2006-01-02"

// DaysPerWeek is the number of day slots in a WeekBucket.
const DaysPerWeek = 7

// DayLabels are the short weekday names, Monday first.
var DayLabels = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// MondayOf returns midnight of the Monday starting t's week.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, time.UTC)
}

// WeekKey formats the Monday of t's week as a week key.
func WeekKey(t time.Time) string {
	return MondayOf(t).Format(DateLayout)
}

// ParseWeekKey parses a YYYY-MM-DD key. The date need not be a Monday.
func ParseWeekKey(key string) (time.Time, error) {
	t, err := time.Parse(DateLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", key)
	}
	return t, nil
}

// ShiftWeek moves a week key by n weeks and aligns the result to Monday.
func ShiftWeek(key string, n int) (string, error) {
	t, err := ParseWeekKey(key)
	if err != nil {
		return "", err
	}
	return WeekKey(t.AddDate(0, 0, 7*n)), nil
}

// MonthKey returns the "YYYY-MM" prefix of a week key.
func MonthKey(weekKey string) string {
	if len(weekKey) < 7 {
		return weekKey
	}
	return weekKey[:7]
}

// YearKey returns the "YYYY" prefix of a week key.
func YearKey(weekKey string) string {
	if len(weekKey) < 4 {
		return weekKey
	}
	return weekKey[:4]
}

// DayDate returns the calendar date of day slot i in the week starting at key.
func DayDate(key string, i int) (time.Time, error) {
	t, err := ParseWeekKey(key)
	if err != nil {
		return time.Time{}, err
	}
	return t.AddDate(0, 0, i), nil
}

// ParseDay accepts a weekday name ("mon", "Monday"), or a 1-based index.
func ParseDay(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("day is required")
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > DaysPerWeek {
			return 0, fmt.Errorf("day %d out of range (1..7)", n)
		}
		return n - 1, nil
	}
	if len(s) >= 3 {
		for i, label := range DayLabels {
			if strings.HasPrefix(s, strings.ToLower(label)) {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown day %q (use mon..sun or 1..7)", s)
}
