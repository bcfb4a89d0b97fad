package catalog

import (
	"time"

	"github.com/lyquocphong/booking-system/internal/timeutil"
)

// DaySchedule is the open window for one weekday. Weekday numbering is
// time.Weekday: 0=Sunday .. 6=Saturday, everywhere.
type DaySchedule struct {
	Weekday time.Weekday
	Enabled bool
	From    timeutil.TimeOfDay
	To      timeutil.TimeOfDay
}

type Service struct {
	ID              int           `db:"id" json:"id"`
	Name            string        `db:"name" json:"name"`
	PriceCents      int64         `db:"price_cents" json:"price_cents"`
	DurationMinutes int           `db:"duration_minutes" json:"duration_minutes"`
	Schedule        []DaySchedule `db:"-" json:"schedule"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
}

// ScheduleFor returns the first configured entry for the given weekday.
// A missing entry means the service is closed that day.
func (s *Service) ScheduleFor(day time.Weekday) (DaySchedule, bool) {
	for _, entry := range s.Schedule {
		if entry.Weekday == day {
			return entry, true
		}
	}
	return DaySchedule{}, false
}

func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// Slot is a free, bookable window, always exactly the service duration wide.
type Slot struct {
	From string `json:"from" example:"09:00"`
	To   string `json:"to" example:"09:50"`
}

// BookedInterval is an already reserved absolute-time range. Intervals for
// one day are expected to be pairwise non-overlapping; the sweep tolerates
// overlap but does not merge it.
type BookedInterval struct {
	Start time.Time
	End   time.Time
}

type ScheduleEntryRequest struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Enabled bool   `json:"enabled"`
	From    string `json:"from" binding:"required"`
	To      string `json:"to" binding:"required"`
}

type CreateServiceRequest struct {
	Name            string                 `json:"name" binding:"required"`
	PriceCents      int64                  `json:"price_cents" binding:"required,min=0"`
	DurationMinutes int                    `json:"duration_minutes" binding:"required,min=1"`
	Schedule        []ScheduleEntryRequest `json:"schedule" binding:"required,min=1,dive"`
}
