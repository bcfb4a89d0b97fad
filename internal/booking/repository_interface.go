package booking

import (
	"context"
	"time"
)

type Repository interface {
	CreateBooking(ctx context.Context, identifier, email string, start, end time.Time) (*Booking, error)
	GetByIdentifier(ctx context.Context, identifier string) (*Booking, error)
	FindByRange(ctx context.Context, from, to time.Time, excludeCancelled bool) ([]Booking, error)
	GetAllBookings(ctx context.Context) ([]Booking, error)
	ConfirmBooking(ctx context.Context, identifier string) error
	CancelBooking(ctx context.Context, identifier string) error
}
