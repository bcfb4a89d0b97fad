package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lyquocphong/booking-system/internal/timeutil"
)

var ErrServiceNotFound = errors.New("service not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

type scheduleRow struct {
	ID        int    `db:"id"`
	ServiceID int    `db:"service_id"`
	Weekday   int    `db:"weekday"`
	Enabled   bool   `db:"enabled"`
	OpenFrom  string `db:"open_from"`
	OpenTo    string `db:"open_to"`
}

func (r *repository) GetServiceByID(ctx context.Context, id int) (*Service, error) {
	query := `
		SELECT id, name, price_cents, duration_minutes, created_at
		FROM services
		WHERE id = $1
	`

	var svc Service
	err := r.db.GetContext(ctx, &svc, query, id)
	if err != nil {
		return nil, ErrServiceNotFound
	}

	schedule, err := r.loadSchedule(ctx, svc.ID)
	if err != nil {
		return nil, err
	}
	svc.Schedule = schedule

	return &svc, nil
}

func (r *repository) GetAllServices(ctx context.Context) ([]Service, error) {
	query := `
		SELECT id, name, price_cents, duration_minutes, created_at
		FROM services
		ORDER BY id ASC
	`

	var services []Service
	err := r.db.SelectContext(ctx, &services, query)
	if err != nil {
		return nil, err
	}

	for i := range services {
		schedule, err := r.loadSchedule(ctx, services[i].ID)
		if err != nil {
			return nil, err
		}
		services[i].Schedule = schedule
	}

	return services, nil
}

func (r *repository) CreateService(ctx context.Context, req CreateServiceRequest) (*Service, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO services (name, price_cents, duration_minutes)
		VALUES ($1, $2, $3)
		RETURNING id, name, price_cents, duration_minutes, created_at
	`

	var svc Service
	if err := tx.GetContext(ctx, &svc, query, req.Name, req.PriceCents, req.DurationMinutes); err != nil {
		return nil, err
	}

	entryQuery := `
		INSERT INTO service_schedules (service_id, weekday, enabled, open_from, open_to)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, entry := range req.Schedule {
		from, err := timeutil.ParseTimeOfDay(entry.From)
		if err != nil {
			return nil, err
		}
		to, err := timeutil.ParseTimeOfDay(entry.To)
		if err != nil {
			return nil, err
		}

		if _, err := tx.ExecContext(ctx, entryQuery, svc.ID, entry.Weekday, entry.Enabled, entry.From, entry.To); err != nil {
			return nil, err
		}

		svc.Schedule = append(svc.Schedule, DaySchedule{
			Weekday: time.Weekday(entry.Weekday),
			Enabled: entry.Enabled,
			From:    from,
			To:      to,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &svc, nil
}

// loadSchedule keeps declaration order: schedule lookup is first match wins,
// so rows come back ordered by insertion.
func (r *repository) loadSchedule(ctx context.Context, serviceID int) ([]DaySchedule, error) {
	query := `
		SELECT id, service_id, weekday, enabled, open_from, open_to
		FROM service_schedules
		WHERE service_id = $1
		ORDER BY id ASC
	`

	var rows []scheduleRow
	if err := r.db.SelectContext(ctx, &rows, query, serviceID); err != nil {
		return nil, err
	}

	schedule := make([]DaySchedule, 0, len(rows))
	for _, row := range rows {
		from, err := timeutil.ParseTimeOfDay(row.OpenFrom)
		if err != nil {
			return nil, err
		}
		to, err := timeutil.ParseTimeOfDay(row.OpenTo)
		if err != nil {
			return nil, err
		}

		schedule = append(schedule, DaySchedule{
			Weekday: time.Weekday(row.Weekday),
			Enabled: row.Enabled,
			From:    from,
			To:      to,
		})
	}

	return schedule, nil
}
