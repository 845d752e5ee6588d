package booking

import (
	"time"

	"barbershop/internal/schedule"
)

type Booking struct {
	ID          int             `db:"id" json:"id"`
	Reference   string          `db:"reference" json:"reference"`
	ClientName  string          `db:"client_name" json:"client_name"`
	ClientEmail string          `db:"client_email" json:"client_email"`
	ClientPhone string          `db:"client_phone" json:"client_phone"`
	Date        string          `db:"booking_date" json:"date"`
	StartTime   string          `db:"start_time" json:"time"`
	ServiceID   int             `db:"service_id" json:"service_id"`
	Status      schedule.Status `db:"status" json:"status"`
	Notes       string          `db:"notes" json:"notes"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

type BookingWithService struct {
	Booking
	ServiceName     string `db:"service_name" json:"service_name"`
	DurationMinutes int    `db:"duration_minutes" json:"duration_minutes"`
}

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required,max=120"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientPhone string `json:"client_phone" binding:"max=30"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ServiceID   int    `json:"service_id" binding:"required"`
	Notes       string `json:"notes" binding:"max=500"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// AvailabilityResponse is the booking form's view of one date: every slot
// annotated, plus the raw occupied times for the informational display.
type AvailabilityResponse struct {
	Date            string          `json:"date"`
	ServiceID       int             `json:"service_id"`
	DurationMinutes int             `json:"duration_minutes"`
	Slots           []schedule.Slot `json:"slots"`
	Occupied        []string        `json:"occupied"`
}

// toRefs projects stored bookings into the scheduling engine's shape.
// Rows with malformed times are skipped; the schema constrains them anyway.
func toRefs(rows []BookingWithService) []schedule.BookingRef {
	refs := make([]schedule.BookingRef, 0, len(rows))
	for _, row := range rows {
		t, err := schedule.ParseTimeOfDay(row.StartTime)
		if err != nil {
			continue
		}
		refs = append(refs, schedule.BookingRef{
			ID:          row.ID,
			Date:        row.Date,
			Time:        t,
			ServiceID:   row.ServiceID,
			ServiceName: row.ServiceName,
			Status:      row.Status,
		})
	}
	return refs
}
