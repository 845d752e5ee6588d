package booking

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	// ErrSlotTaken is the store's answer when two submissions race for the
	// same slot: the partial unique index on (booking_date, start_time)
	// rejects the loser. Retryable from the client's point of view.
	ErrSlotTaken = errors.New("slot was taken by another booking")
	// ErrInvalidTransition covers confirm/cancel attempts on bookings whose
	// status no longer allows the move (cancelled is terminal).
	ErrInvalidTransition = errors.New("booking status does not allow this transition")
)

const uniqueViolation = "23505"

type Repository interface {
	Create(ctx context.Context, req CreateBookingRequest, reference string) (*Booking, error)
	GetByID(ctx context.Context, id int) (*BookingWithService, error)
	GetByReference(ctx context.Context, reference string) (*BookingWithService, error)
	Confirm(ctx context.Context, id int) error
	Cancel(ctx context.Context, id int) error
	Reschedule(ctx context.Context, id int, date, startTime string) (*Booking, error)
	Delete(ctx context.Context, id int) error
	ListByDate(ctx context.Context, date string) ([]BookingWithService, error)
	ListByStatus(ctx context.Context, status string) ([]BookingWithService, error)
	ActiveForDate(ctx context.Context, date string) ([]BookingWithService, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func (r *repository) Create(ctx context.Context, req CreateBookingRequest, reference string) (*Booking, error) {
	query := `
		INSERT INTO bookings (reference, client_name, client_email, client_phone, booking_date, start_time, service_id, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending')
		RETURNING id, reference, client_name, client_email, client_phone, booking_date, start_time, service_id, status, notes, created_at
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query,
		reference, req.ClientName, req.ClientEmail, req.ClientPhone,
		req.Date, req.Time, req.ServiceID, req.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return &b, nil
}

const selectWithService = `
	SELECT b.id, b.reference, b.client_name, b.client_email, b.client_phone,
	       b.booking_date, b.start_time, b.service_id, b.status, b.notes, b.created_at,
	       COALESCE(s.name, '') AS service_name,
	       COALESCE(s.duration_minutes, 0) AS duration_minutes
	FROM bookings b
	LEFT JOIN services s ON b.service_id = s.id
`

func (r *repository) GetByID(ctx context.Context, id int) (*BookingWithService, error) {
	query := selectWithService + ` WHERE b.id = $1`

	var b BookingWithService
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetByReference(ctx context.Context, reference string) (*BookingWithService, error) {
	query := selectWithService + ` WHERE b.reference = $1`

	var b BookingWithService
	err := r.db.GetContext(ctx, &b, query, reference)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) Confirm(ctx context.Context, id int) error {
	query := `
		UPDATE bookings
		SET status = 'confirmed'
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrInvalidTransition
	}

	return nil
}

func (r *repository) Cancel(ctx context.Context, id int) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled'
		WHERE id = $1 AND status IN ('pending', 'confirmed')
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrInvalidTransition
	}

	return nil
}

func (r *repository) Reschedule(ctx context.Context, id int, date, startTime string) (*Booking, error) {
	query := `
		UPDATE bookings
		SET booking_date = $2, start_time = $3
		WHERE id = $1 AND status IN ('pending', 'confirmed')
		RETURNING id, reference, client_name, client_email, client_phone, booking_date, start_time, service_id, status, notes, created_at
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id, date, startTime)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return &b, nil
}

// Delete removes a cancelled booking from history. Active bookings are
// never deleted, only cancelled.
func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM bookings WHERE id = $1 AND status = 'cancelled'`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrInvalidTransition
	}

	return nil
}

func (r *repository) ListByDate(ctx context.Context, date string) ([]BookingWithService, error) {
	query := selectWithService + ` WHERE b.booking_date = $1 ORDER BY b.start_time ASC`

	var bookings []BookingWithService
	err := r.db.SelectContext(ctx, &bookings, query, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListByStatus(ctx context.Context, status string) ([]BookingWithService, error) {
	query := selectWithService + ` WHERE b.status = $1 ORDER BY b.booking_date ASC, b.start_time ASC`

	var bookings []BookingWithService
	err := r.db.SelectContext(ctx, &bookings, query, status)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// ActiveForDate returns the date's non-cancelled bookings, the input for
// occupancy computation.
func (r *repository) ActiveForDate(ctx context.Context, date string) ([]BookingWithService, error) {
	query := selectWithService + ` WHERE b.booking_date = $1 AND b.status <> 'cancelled' ORDER BY b.start_time ASC`

	var bookings []BookingWithService
	err := r.db.SelectContext(ctx, &bookings, query, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
