package schedule

import (
	"errors"
	"time"
)

var ErrInvalidHours = errors.New("opening hours must satisfy open < close")

// DayHours is one weekday's opening window. When Closed is true the
// open/close values are ignored.
type DayHours struct {
	Open   TimeOfDay
	Close  TimeOfDay
	Closed bool
}

// WeekHours maps each weekday to its opening window. Days without an entry
// are treated as closed.
type WeekHours map[time.Weekday]DayHours

// Validate checks every open day's window. Open and close must sit on the
// booking grid and satisfy open < close.
func (w WeekHours) Validate() error {
	for _, day := range w {
		if day.Closed {
			continue
		}
		if !day.Open.OnGrid() || !day.Close.OnGrid() {
			return ErrOffGrid
		}
		if day.Open >= day.Close {
			return ErrInvalidHours
		}
	}
	return nil
}
