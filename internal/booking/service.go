package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lyquocphong/booking-system/internal/catalog"
	"github.com/lyquocphong/booking-system/internal/logger"
	"github.com/lyquocphong/booking-system/internal/metrics"
	"github.com/lyquocphong/booking-system/internal/timeutil"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidTime      = errors.New("invalid time")
	ErrOutsideSchedule  = errors.New("requested time is outside the service schedule")
	ErrPastBooking      = errors.New("booking date is in the past")
	ErrCannotBook       = errors.New("this time cannot be booked")
	ErrBookingNotFound  = errors.New("booking not found")
)

// Notifier delivers booking lifecycle emails.
type Notifier interface {
	SendReservationPending(ctx context.Context, to, serviceName, startsAt, confirmURL string) error
	SendBookingConfirmed(ctx context.Context, to, startsAt string) error
	SendBookingCancelled(ctx context.Context, to, startsAt string) error
}

type Service interface {
	AvailableSlots(ctx context.Context, svc *catalog.Service, fromDate, toDate string) (map[string][]catalog.Slot, error)
	Reserve(ctx context.Context, svc *catalog.Service, req ReserveRequest) (*Booking, error)
	Confirm(ctx context.Context, identifier string) (*Booking, error)
	Cancel(ctx context.Context, identifier string) (*Booking, error)
	Get(ctx context.Context, identifier string) (*Booking, error)
	List(ctx context.Context) ([]BookingResponse, error)
}

type service struct {
	repo       Repository
	engine     *catalog.Engine
	notifier   Notifier
	loc        *time.Location
	dateFormat string
	baseURL    string

	// Overridable for tests; the only impurity in the workflow.
	now func() time.Time
}

func NewService(repo Repository, engine *catalog.Engine, notifier Notifier, loc *time.Location, dateFormat, baseURL string) Service {
	return &service{
		repo:       repo,
		engine:     engine,
		notifier:   notifier,
		loc:        loc,
		dateFormat: dateFormat,
		baseURL:    baseURL,
		now:        time.Now,
	}
}

// AvailableSlots computes free slots for every day in [fromDate, toDate]
// inclusive, keyed by YYYY-MM-DD. Each day is computed independently from
// that day's non-cancelled bookings.
func (s *service) AvailableSlots(ctx context.Context, svc *catalog.Service, fromDate, toDate string) (map[string][]catalog.Slot, error) {
	from, err := timeutil.ParseDate(fromDate, s.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	to, err := timeutil.ParseDate(toDate, s.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !timeutil.ValidateDateRange(from, to) {
		return nil, ErrInvalidDateRange
	}

	result := make(map[string][]catalog.Slot)

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		booked, err := s.repo.FindByRange(ctx,
			timeutil.StartOfDay(day, s.loc),
			timeutil.EndOfDay(day, s.loc),
			true,
		)
		if err != nil {
			return nil, err
		}

		slots := s.engine.AvailableSlots(svc, day, toIntervals(booked))
		result[day.Format(timeutil.DateLayout)] = slots
		metrics.RecordSlotComputation(svc.Name, len(slots))
	}

	return result, nil
}

// Reserve runs the reservation workflow: schedule check, past-date check,
// feasibility check against the day's bookings, then persists the booking
// as unconfirmed and queues a confirmation email.
func (s *service) Reserve(ctx context.Context, svc *catalog.Service, req ReserveRequest) (*Booking, error) {
	date, err := timeutil.ParseDate(req.Date, s.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	from, err := timeutil.ParseTimeOfDay(req.From)
	if err != nil {
		return nil, ErrInvalidTime
	}

	schedule, ok := svc.ScheduleFor(date.Weekday())
	if !ok || !schedule.Enabled || !timeutil.InRange(from, schedule.From, schedule.To) {
		return nil, ErrOutsideSchedule
	}

	start := timeutil.At(date, from, s.loc)

	today := timeutil.StartOfDay(s.now(), s.loc)
	if start.Before(today) {
		return nil, ErrPastBooking
	}

	end := start.Add(svc.Duration())

	booked, err := s.repo.FindByRange(ctx,
		timeutil.StartOfDay(start, s.loc),
		timeutil.EndOfDay(start, s.loc),
		true,
	)
	if err != nil {
		return nil, err
	}

	if !s.engine.CanBook(svc, start, end, toIntervals(booked)) {
		return nil, ErrCannotBook
	}

	booking, err := s.repo.CreateBooking(ctx, uuid.NewString(), req.Email, start, end)
	if err != nil {
		return nil, err
	}

	metrics.RecordReservation(svc.Name)

	confirmURL := s.baseURL + "/bookings/" + booking.Identifier + "/confirm"
	startsAt := timeutil.Format(booking.StartTime, s.dateFormat, s.loc)
	if err := s.notifier.SendReservationPending(ctx, booking.Email, svc.Name, startsAt, confirmURL); err != nil {
		logger.Error("failed to queue reservation email", "identifier", booking.Identifier, "error", err)
	}

	return booking, nil
}

func (s *service) Confirm(ctx context.Context, identifier string) (*Booking, error) {
	booking, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	if err := s.repo.ConfirmBooking(ctx, identifier); err != nil {
		if errors.Is(err, ErrNoRowsUpdated) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	booking.Status = StatusConfirmed

	metrics.RecordConfirmation()

	startsAt := timeutil.Format(booking.StartTime, s.dateFormat, s.loc)
	if err := s.notifier.SendBookingConfirmed(ctx, booking.Email, startsAt); err != nil {
		logger.Error("failed to queue confirmation email", "identifier", identifier, "error", err)
	}

	return booking, nil
}

func (s *service) Cancel(ctx context.Context, identifier string) (*Booking, error) {
	booking, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	if err := s.repo.CancelBooking(ctx, identifier); err != nil {
		if errors.Is(err, ErrNoRowsUpdated) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	booking.Status = StatusCancelled

	metrics.RecordCancellation()

	startsAt := timeutil.Format(booking.StartTime, s.dateFormat, s.loc)
	if err := s.notifier.SendBookingCancelled(ctx, booking.Email, startsAt); err != nil {
		logger.Error("failed to queue cancellation email", "identifier", identifier, "error", err)
	}

	return booking, nil
}

func (s *service) Get(ctx context.Context, identifier string) (*Booking, error) {
	booking, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *service) List(ctx context.Context) ([]BookingResponse, error) {
	bookings, err := s.repo.GetAllBookings(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, toResponse(&bookings[i], s.dateFormat, s.loc))
	}

	return responses, nil
}

func toIntervals(bookings []Booking) []catalog.BookedInterval {
	intervals := make([]catalog.BookedInterval, 0, len(bookings))
	for _, b := range bookings {
		intervals = append(intervals, catalog.BookedInterval{Start: b.StartTime, End: b.EndTime})
	}
	return intervals
}
