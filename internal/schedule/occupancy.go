package schedule

// DefaultDurationMinutes is used when a booking's service cannot be resolved
// in the catalog. Unknown services occupy a standard window instead of
// blocking the whole computation.
const DefaultDurationMinutes = 30

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// StatusFilter decides which booking statuses occupy their slot.
type StatusFilter func(Status) bool

// ConfirmedOnly is the salon's default policy: pending requests do not
// reserve their slot until staff confirms them.
func ConfirmedOnly(s Status) bool {
	return s == StatusConfirmed
}

// ConfirmedOrPending is the stricter policy where an unconfirmed request
// already blocks the slot.
func ConfirmedOrPending(s Status) bool {
	return s == StatusConfirmed || s == StatusPending
}

// DurationResolver looks up a service's duration for occupancy expansion.
// defaulted reports that the service could not be resolved and
// DefaultDurationMinutes was substituted.
type DurationResolver func(serviceID int, serviceName string) (minutes int, defaulted bool)

// BookingRef is the conflict-relevant projection of a stored booking.
type BookingRef struct {
	ID          int
	Date        string // YYYY-MM-DD
	Time        TimeOfDay
	ServiceID   int
	ServiceName string
	Status      Status
}

// SlotKey identifies one grid position on one calendar date.
type SlotKey struct {
	Date string
	Time TimeOfDay
}

// SlotSet is the set of occupied grid positions. Overlapping bookings
// collapse naturally.
type SlotSet map[SlotKey]struct{}

func (s SlotSet) Contains(date string, t TimeOfDay) bool {
	_, ok := s[SlotKey{Date: date, Time: t}]
	return ok
}

// OccupiedSlots expands each occupying booking's [time, time+duration)
// interval into the 15-minute grid points it covers. A 45-minute booking at
// 10:00 occupies 10:00, 10:15 and 10:30; 10:45 is the next slot's start.
//
// excludeID removes one booking from consideration so a reschedule does not
// conflict with itself; pass 0 to exclude nothing.
func OccupiedSlots(bookings []BookingRef, resolve DurationResolver, occupies StatusFilter, excludeID int) SlotSet {
	if occupies == nil {
		occupies = ConfirmedOnly
	}

	occupied := make(SlotSet)
	for _, b := range bookings {
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if !occupies(b.Status) {
			continue
		}

		minutes := DefaultDurationMinutes
		if resolve != nil {
			if resolved, defaulted := resolve(b.ServiceID, b.ServiceName); !defaulted {
				minutes = resolved
			}
		}

		for t := b.Time; t < b.Time.Add(minutes); t = t.Add(SlotIntervalMinutes) {
			occupied[SlotKey{Date: b.Date, Time: t}] = struct{}{}
		}
	}

	return occupied
}
