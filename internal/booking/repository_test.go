package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingColumns() []string {
	return []string{"id", "identifier", "email", "start_time", "end_time", "status", "created_at"}
}

func TestCreateBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	start := time.Now()
	end := start.Add(50 * time.Minute)

	mock.ExpectQuery(`INSERT INTO bookings.*RETURNING`).
		WithArgs("abc-123", "guest@example.com", start, end, StatusUnconfirmed).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, "abc-123", "guest@example.com", start, end, int(StatusUnconfirmed), time.Now()))

	booking, err := repo.CreateBooking(context.Background(), "abc-123", "guest@example.com", start, end)
	require.NoError(t, err)
	assert.Equal(t, 1, booking.ID)
	assert.Equal(t, "abc-123", booking.Identifier)
	assert.Equal(t, StatusUnconfirmed, booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIdentifier(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT id, identifier, email, start_time, end_time, status, created_at\s+FROM bookings\s+WHERE identifier = \$1`).
		WithArgs("abc-123").
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, "abc-123", "guest@example.com", time.Now(), time.Now(), int(StatusConfirmed), time.Now()))

	booking, err := repo.GetByIdentifier(context.Background(), "abc-123")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByRange_ExcludesCancelled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	from := time.Now()
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery(`SELECT .* FROM bookings\s+WHERE start_time >= \$1 AND start_time <= \$2\s+AND status <> \$3\s+ORDER BY start_time ASC`).
		WithArgs(from, to, StatusCancelled).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, "a", "a@example.com", from, from.Add(time.Hour), int(StatusUnconfirmed), time.Now()).
			AddRow(2, "b", "b@example.com", from.Add(2*time.Hour), from.Add(3*time.Hour), int(StatusConfirmed), time.Now()))

	bookings, err := repo.FindByRange(context.Background(), from, to, true)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByRange_IncludingCancelled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	from := time.Now()
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery(`SELECT .* FROM bookings\s+WHERE start_time >= \$1 AND start_time <= \$2\s+ORDER BY start_time ASC`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows(bookingColumns()))

	bookings, err := repo.FindByRange(context.Background(), from, to, false)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectExec(`UPDATE bookings\s+SET status = \$1\s+WHERE identifier = \$2 AND status = \$3`).
		WithArgs(StatusConfirmed, "abc-123", StatusUnconfirmed).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.ConfirmBooking(context.Background(), "abc-123")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmBooking_AlreadyConfirmed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectExec(`UPDATE bookings`).
		WithArgs(StatusConfirmed, "abc-123", StatusUnconfirmed).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.ConfirmBooking(context.Background(), "abc-123")
	assert.ErrorIs(t, err, ErrNoRowsUpdated)
}

func TestCancelBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectExec(`UPDATE bookings\s+SET status = \$1\s+WHERE identifier = \$2 AND status <> \$1`).
		WithArgs(StatusCancelled, "abc-123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.CancelBooking(context.Background(), "abc-123")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllBookings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT .* FROM bookings\s+ORDER BY start_time ASC`).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, "a", "a@example.com", time.Now(), time.Now(), int(StatusUnconfirmed), time.Now()))

	bookings, err := repo.GetAllBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
