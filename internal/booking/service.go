package booking

import (
	"context"
	"errors"
	"sort"
	"time"

	"barbershop/internal/catalog"
	"barbershop/internal/hours"
	"barbershop/internal/logger"
	"barbershop/internal/metrics"
	"barbershop/internal/schedule"

	"github.com/google/uuid"
)

var (
	ErrServiceUnknown  = errors.New("unknown or inactive service")
	ErrSlotUnavailable = errors.New("slot is not available")
)

// Notifier sends the transactional emails around a booking's lifecycle.
// Satisfied by email.Service.
type Notifier interface {
	SendBookingReceived(ctx context.Context, to, name, service, date, timeOfDay string) error
	SendBookingConfirmed(ctx context.Context, to, name, service, date, timeOfDay string) error
	SendBookingCancelled(ctx context.Context, to, name, service, date, timeOfDay string) error
	SendBookingRescheduled(ctx context.Context, to, name, service, date, timeOfDay string) error
	SendStaffNewBooking(ctx context.Context, to, clientName, service, date, timeOfDay string) error
}

type Service interface {
	Availability(ctx context.Context, date string, serviceID, excludeID int) (*AvailabilityResponse, error)
	Create(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	Confirm(ctx context.Context, id int) error
	Cancel(ctx context.Context, id int) error
	CancelByReference(ctx context.Context, reference string) error
	Delete(ctx context.Context, id int) error
	Reschedule(ctx context.Context, id int, req RescheduleRequest) (*Booking, error)
	GetByReference(ctx context.Context, reference string) (*BookingWithService, error)
	ListByDate(ctx context.Context, date string) ([]BookingWithService, error)
	ListByStatus(ctx context.Context, status string) ([]BookingWithService, error)
}

type service struct {
	repo        Repository
	hoursRepo   hours.Repository
	catalogRepo catalog.Repository
	notifier    Notifier
	occupies    schedule.StatusFilter
	staffEmail  string
}

func NewService(
	repo Repository,
	hoursRepo hours.Repository,
	catalogRepo catalog.Repository,
	notifier Notifier,
	occupies schedule.StatusFilter,
	staffEmail string,
) Service {
	if occupies == nil {
		occupies = schedule.ConfirmedOnly
	}
	return &service{
		repo:        repo,
		hoursRepo:   hoursRepo,
		catalogRepo: catalogRepo,
		notifier:    notifier,
		occupies:    occupies,
		staffEmail:  staffEmail,
	}
}

// Availability lists every slot for the date annotated with availability,
// plus the raw occupied times. excludeID removes one booking from occupancy
// for the reschedule form; pass 0 otherwise.
//
// Store failures degrade to an empty list rather than an error: the booking
// form shows "no slots" and the authoritative check at submission still
// protects correctness.
func (s *service) Availability(ctx context.Context, date string, serviceID, excludeID int) (*AvailabilityResponse, error) {
	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, err
	}

	services, err := s.catalogRepo.GetAll(ctx)
	if err != nil {
		logger.Error("availability: failed to load services", "error", err)
		return emptyAvailability(date, serviceID), nil
	}

	svc, ok := catalog.Lookup(services, serviceID, "")
	if !ok || !svc.Active {
		return nil, ErrServiceUnknown
	}

	week, err := s.hoursRepo.Week(ctx)
	if err != nil {
		logger.Error("availability: failed to load opening hours", "error", err)
		return emptyAvailability(date, serviceID), nil
	}

	rows, err := s.repo.ActiveForDate(ctx, date)
	if err != nil {
		logger.Error("availability: failed to load bookings", "error", err)
		return emptyAvailability(date, serviceID), nil
	}

	occupied := schedule.OccupiedSlots(toRefs(rows), catalog.Resolver(services), s.occupies, excludeID)

	slots, err := schedule.ListSlots(day, week, svc.DurationMinutes, time.Now(), occupied)
	if err != nil {
		return nil, err
	}

	metrics.RecordAvailabilityQuery("ok")

	return &AvailabilityResponse{
		Date:            date,
		ServiceID:       svc.ID,
		DurationMinutes: svc.DurationMinutes,
		Slots:           slots,
		Occupied:        occupiedTimes(occupied, date),
	}, nil
}

func emptyAvailability(date string, serviceID int) *AvailabilityResponse {
	metrics.RecordAvailabilityQuery("degraded")
	return &AvailabilityResponse{
		Date:      date,
		ServiceID: serviceID,
		Slots:     []schedule.Slot{},
		Occupied:  []string{},
	}
}

func occupiedTimes(occupied schedule.SlotSet, date string) []string {
	times := make([]string, 0, len(occupied))
	for key := range occupied {
		if key.Date == date {
			times = append(times, key.Time.String())
		}
	}
	sort.Strings(times)
	return times
}

// isBookable re-evaluates availability at submission time. Fails closed:
// any load error answers false.
func (s *service) isBookable(ctx context.Context, day time.Time, t schedule.TimeOfDay, durationMinutes, excludeID int, services []catalog.Service) bool {
	week, err := s.hoursRepo.Week(ctx)
	if err != nil {
		logger.Error("booking gate: failed to load opening hours", "error", err)
		return false
	}

	date := day.Format(schedule.DateLayout)
	rows, err := s.repo.ActiveForDate(ctx, date)
	if err != nil {
		logger.Error("booking gate: failed to load bookings", "error", err)
		return false
	}

	occupied := schedule.OccupiedSlots(toRefs(rows), catalog.Resolver(services), s.occupies, excludeID)
	return schedule.IsBookable(day, t, week, durationMinutes, time.Now(), occupied)
}

func (s *service) Create(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	day, err := schedule.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	t, err := schedule.ParseGridTime(req.Time)
	if err != nil {
		return nil, err
	}

	services, err := s.catalogRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	svc, ok := catalog.Lookup(services, req.ServiceID, "")
	if !ok || !svc.Active {
		return nil, ErrServiceUnknown
	}

	if !s.isBookable(ctx, day, t, svc.DurationMinutes, 0, services) {
		metrics.RecordBooking("rejected")
		return nil, ErrSlotUnavailable
	}

	b, err := s.repo.Create(ctx, req, uuid.NewString())
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			metrics.RecordBookingConflict()
		}
		return nil, err
	}

	metrics.RecordBooking("pending")

	// Notifications are best-effort; the booking stands regardless.
	if err := s.notifier.SendBookingReceived(ctx, b.ClientEmail, b.ClientName, svc.Name, b.Date, b.StartTime); err != nil {
		logger.Error("failed to queue booking received email", "error", err, "reference", b.Reference)
	}
	if s.staffEmail != "" {
		if err := s.notifier.SendStaffNewBooking(ctx, s.staffEmail, b.ClientName, svc.Name, b.Date, b.StartTime); err != nil {
			logger.Error("failed to queue staff notification email", "error", err, "reference", b.Reference)
		}
	}

	return b, nil
}

func (s *service) Confirm(ctx context.Context, id int) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrBookingNotFound
	}

	if err := s.repo.Confirm(ctx, id); err != nil {
		return err
	}

	metrics.RecordBooking("confirmed")

	if err := s.notifier.SendBookingConfirmed(ctx, b.ClientEmail, b.ClientName, b.ServiceName, b.Date, b.StartTime); err != nil {
		logger.Error("failed to queue confirmation email", "error", err, "reference", b.Reference)
	}

	return nil
}

func (s *service) Cancel(ctx context.Context, id int) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrBookingNotFound
	}

	if err := s.repo.Cancel(ctx, id); err != nil {
		return err
	}

	metrics.RecordBookingCancellation()

	if err := s.notifier.SendBookingCancelled(ctx, b.ClientEmail, b.ClientName, b.ServiceName, b.Date, b.StartTime); err != nil {
		logger.Error("failed to queue cancellation email", "error", err, "reference", b.Reference)
	}

	return nil
}

func (s *service) CancelByReference(ctx context.Context, reference string) error {
	b, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return ErrBookingNotFound
	}

	return s.Cancel(ctx, b.ID)
}

// Delete removes a cancelled booking from history. No email; the client
// already heard about the cancellation.
func (s *service) Delete(ctx context.Context, id int) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrBookingNotFound
	}
	if b.Status != schedule.StatusCancelled {
		return ErrInvalidTransition
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) Reschedule(ctx context.Context, id int, req RescheduleRequest) (*Booking, error) {
	day, err := schedule.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	t, err := schedule.ParseGridTime(req.Time)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if existing.Status == schedule.StatusCancelled {
		return nil, ErrInvalidTransition
	}

	services, err := s.catalogRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	svc, ok := catalog.Lookup(services, existing.ServiceID, existing.ServiceName)
	durationMinutes := schedule.DefaultDurationMinutes
	serviceName := existing.ServiceName
	if ok {
		durationMinutes = svc.DurationMinutes
		serviceName = svc.Name
	}

	// The booking being moved must not conflict with itself.
	if !s.isBookable(ctx, day, t, durationMinutes, id, services) {
		return nil, ErrSlotUnavailable
	}

	b, err := s.repo.Reschedule(ctx, id, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			metrics.RecordBookingConflict()
		}
		return nil, err
	}

	if err := s.notifier.SendBookingRescheduled(ctx, b.ClientEmail, b.ClientName, serviceName, b.Date, b.StartTime); err != nil {
		logger.Error("failed to queue reschedule email", "error", err, "reference", b.Reference)
	}

	return b, nil
}

func (s *service) GetByReference(ctx context.Context, reference string) (*BookingWithService, error) {
	b, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *service) ListByDate(ctx context.Context, date string) ([]BookingWithService, error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, err
	}
	return s.repo.ListByDate(ctx, date)
}

func (s *service) ListByStatus(ctx context.Context, status string) ([]BookingWithService, error) {
	switch schedule.Status(status) {
	case schedule.StatusPending, schedule.StatusConfirmed, schedule.StatusCancelled:
	default:
		return nil, errors.New("invalid status filter")
	}
	return s.repo.ListByStatus(ctx, status)
}
