package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlotIntervalMinutes is the booking grid: every time of interest is a
// multiple of 15 minutes from midnight.
const SlotIntervalMinutes = 15

const DateLayout = "2006-01-02"

var (
	ErrInvalidTime     = errors.New("invalid time, expected HH:MM")
	ErrOffGrid         = errors.New("time is not aligned to the 15-minute grid")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
)

// TimeOfDay is a naive wall-clock time stored as minutes from midnight.
type TimeOfDay int

// ParseTimeOfDay parses a strict 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, ErrInvalidTime
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, ErrInvalidTime
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, ErrInvalidTime
	}

	return TimeOfDay(hour*60 + minute), nil
}

// ParseGridTime parses "HH:MM" and additionally rejects times that do not
// fall on the 15-minute grid.
func ParseGridTime(s string) (TimeOfDay, error) {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return 0, err
	}
	if !t.OnGrid() {
		return 0, ErrOffGrid
	}
	return t, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) OnGrid() bool {
	return t >= 0 && int(t)%SlotIntervalMinutes == 0
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return ErrInvalidTime
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseDate parses a strict "YYYY-MM-DD" calendar date in local time.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// timeOfDayOf truncates a clock reading to its minutes-from-midnight value.
func timeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
