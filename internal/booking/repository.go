package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrNoRowsUpdated = errors.New("booking not found or already in that state")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBooking(ctx context.Context, identifier, email string, start, end time.Time) (*Booking, error) {
	query := `
		INSERT INTO bookings (identifier, email, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, identifier, email, start_time, end_time, status, created_at
	`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, identifier, email, start, end, StatusUnconfirmed)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *repository) GetByIdentifier(ctx context.Context, identifier string) (*Booking, error) {
	query := `
		SELECT id, identifier, email, start_time, end_time, status, created_at
		FROM bookings
		WHERE identifier = $1
	`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, identifier)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// FindByRange returns bookings whose start lies in [from, to], ordered by
// start time ascending. The availability sweep relies on that ordering.
func (r *repository) FindByRange(ctx context.Context, from, to time.Time, excludeCancelled bool) ([]Booking, error) {
	query := `
		SELECT id, identifier, email, start_time, end_time, status, created_at
		FROM bookings
		WHERE start_time >= $1 AND start_time <= $2
	`
	args := []interface{}{from, to}

	if excludeCancelled {
		query += ` AND status <> $3`
		args = append(args, StatusCancelled)
	}

	query += ` ORDER BY start_time ASC`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, args...)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetAllBookings(ctx context.Context) ([]Booking, error) {
	query := `
		SELECT id, identifier, email, start_time, end_time, status, created_at
		FROM bookings
		ORDER BY start_time ASC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ConfirmBooking(ctx context.Context, identifier string) error {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE identifier = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query, StatusConfirmed, identifier, StatusUnconfirmed)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNoRowsUpdated
	}

	return nil
}

func (r *repository) CancelBooking(ctx context.Context, identifier string) error {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE identifier = $2 AND status <> $1
	`

	result, err := r.db.ExecContext(ctx, query, StatusCancelled, identifier)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNoRowsUpdated
	}

	return nil
}
