package booking

import (
	"time"

	"github.com/lyquocphong/booking-system/internal/timeutil"
)

type Status int

const (
	StatusUnconfirmed Status = iota
	StatusConfirmed
	StatusCancelled
)

func (s Status) Label() string {
	switch s {
	case StatusUnconfirmed:
		return "unconfirmed"
	case StatusConfirmed:
		return "confirmed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

type Booking struct {
	ID         int       `db:"id" json:"id"`
	Identifier string    `db:"identifier" json:"identifier"`
	Email      string    `db:"email" json:"email"`
	StartTime  time.Time `db:"start_time" json:"start_time"`
	EndTime    time.Time `db:"end_time" json:"end_time"`
	Status     Status    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Interval reduces a booking to the absolute-time range the availability
// sweep reads.
type Interval struct {
	Start time.Time
	End   time.Time
}

type ReserveRequest struct {
	Date  string `json:"date" binding:"required" example:"2024-03-11"`
	From  string `json:"from" binding:"required" example:"09:00"`
	Email string `json:"email" binding:"required,email" example:"guest@example.com"`
}

// BookingResponse is the API shape of a booking, times rendered in the
// configured timezone and display layout.
type BookingResponse struct {
	Identifier  string `json:"identifier"`
	Email       string `json:"email"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	CreatedAt   string `json:"created_at"`
	Status      int    `json:"status"`
	StatusLabel string `json:"status_label"`
}

func toResponse(b *Booking, layout string, loc *time.Location) BookingResponse {
	return BookingResponse{
		Identifier:  b.Identifier,
		Email:       b.Email,
		StartTime:   timeutil.Format(b.StartTime, layout, loc),
		EndTime:     timeutil.Format(b.EndTime, layout, loc),
		CreatedAt:   timeutil.Format(b.CreatedAt, layout, loc),
		Status:      int(b.Status),
		StatusLabel: b.Status.Label(),
	}
}
