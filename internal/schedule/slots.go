package schedule

import "time"

// GenerateSlots returns the candidate start times for one calendar date:
// every 15-minute grid point from open up to the last one where a service of
// the given duration still finishes by closing time. A closed day, or a day
// with no hours entry, yields no slots. When date is today, slots whose start
// is not strictly after now's time of day are dropped.
//
// Pure function: recomputed from its inputs on every call, no side effects.
func GenerateSlots(date time.Time, week WeekHours, durationMinutes int, now time.Time) ([]TimeOfDay, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	day, ok := week[date.Weekday()]
	if !ok || day.Closed {
		return nil, nil
	}
	if day.Open >= day.Close {
		return nil, ErrInvalidHours
	}

	cutoff := TimeOfDay(-1)
	if sameDay(date, now) {
		cutoff = timeOfDayOf(now)
	}

	var slots []TimeOfDay
	for t := day.Open; t.Add(durationMinutes) <= day.Close; t = t.Add(SlotIntervalMinutes) {
		if t <= cutoff {
			continue
		}
		slots = append(slots, t)
	}

	return slots, nil
}
