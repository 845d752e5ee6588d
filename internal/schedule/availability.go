package schedule

import "time"

// Slot is a derived availability value, produced fresh on every query and
// never stored. Occupied slots are marked, not dropped, so the booking form
// can render both states.
type Slot struct {
	Time      TimeOfDay `json:"time"`
	Available bool      `json:"available"`
}

// ListSlots annotates every generated slot for the date with its
// availability, in ascending time order. A closed or fully elapsed day
// degrades to an empty list, never an error.
func ListSlots(date time.Time, week WeekHours, durationMinutes int, now time.Time, occupied SlotSet) ([]Slot, error) {
	candidates, err := GenerateSlots(date, week, durationMinutes, now)
	if err != nil {
		return nil, err
	}

	dateKey := date.Format(DateLayout)
	slots := make([]Slot, 0, len(candidates))
	for _, t := range candidates {
		slots = append(slots, Slot{
			Time:      t,
			Available: !occupied.Contains(dateKey, t),
		})
	}

	return slots, nil
}

// AvailableSlots returns only the bookable subset, for the plain booking
// form that has no use for occupied entries.
func AvailableSlots(date time.Time, week WeekHours, durationMinutes int, now time.Time, occupied SlotSet) ([]TimeOfDay, error) {
	slots, err := ListSlots(date, week, durationMinutes, now, occupied)
	if err != nil {
		return nil, err
	}

	available := make([]TimeOfDay, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			available = append(available, s.Time)
		}
	}

	return available, nil
}

// IsBookable is the authoritative server-side gate for a submitted booking:
// the requested time must be one of the date's generated slots, must not be
// occupied, and must not lie in the past. The client-rendered slot list is
// advisory only, so this is re-evaluated at submission time.
//
// Fails closed: any missing or invalid input answers false.
func IsBookable(date time.Time, t TimeOfDay, week WeekHours, durationMinutes int, now time.Time, occupied SlotSet) bool {
	if len(week) == 0 || durationMinutes <= 0 || !t.OnGrid() {
		return false
	}

	// Whole days in the past are never bookable; GenerateSlots only filters
	// elapsed times for today itself.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return false
	}

	candidates, err := GenerateSlots(date, week, durationMinutes, now)
	if err != nil {
		return false
	}

	dateKey := date.Format(DateLayout)
	for _, candidate := range candidates {
		if candidate == t {
			return !occupied.Contains(dateKey, t)
		}
	}

	return false
}
