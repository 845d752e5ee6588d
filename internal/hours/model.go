package hours

import (
	"time"

	"barbershop/internal/schedule"
)

// DayEntry is one weekday's opening window as stored and served over the
// API: 0=Sunday through 6=Saturday, times as "HH:MM".
type DayEntry struct {
	Weekday int    `db:"weekday" json:"weekday"`
	Open    string `db:"open_time" json:"open"`
	Close   string `db:"close_time" json:"close"`
	Closed  bool   `db:"closed" json:"closed"`
}

// UpdateWeekRequest replaces the whole week at once; partial updates are not
// supported so the table always holds exactly seven rows.
type UpdateWeekRequest struct {
	Days []DayEntry `json:"days" binding:"required,len=7"`
}

// ToWeekHours converts stored rows into the scheduling engine's
// representation, validating every open day's window.
func ToWeekHours(days []DayEntry) (schedule.WeekHours, error) {
	week := make(schedule.WeekHours, len(days))
	for _, day := range days {
		if day.Weekday < 0 || day.Weekday > 6 {
			return nil, schedule.ErrInvalidDate
		}

		if day.Closed {
			week[time.Weekday(day.Weekday)] = schedule.DayHours{Closed: true}
			continue
		}

		open, err := schedule.ParseGridTime(day.Open)
		if err != nil {
			return nil, err
		}
		close, err := schedule.ParseGridTime(day.Close)
		if err != nil {
			return nil, err
		}

		week[time.Weekday(day.Weekday)] = schedule.DayHours{Open: open, Close: close}
	}

	if err := week.Validate(); err != nil {
		return nil, err
	}

	return week, nil
}
