package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func pendingAppointment() *models.Appointment {
	return &models.Appointment{
		Date:         "2025-10-20",
		StartTime:    "09:00",
		EndTime:      "09:30",
		CustomerID:   "c1",
		BarbershopID: "shop1",
		ServiceID:    "svc1",
	}
}

// O count de sobreposição roda sem FOR UPDATE (Postgres rejeita o lock em
// agregados); a serialização vem do advisory lock por (barbearia, data).
func TestCreateIfNoOverlap(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\), hashtext\(\$2\)\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments" WHERE barbershop_id = \$1 AND date = \$2 AND canceled = \$3 AND start_time <= \$4 AND end_time >= \$5$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO "appointments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateIfNoOverlap(context.Background(), pendingAppointment())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfNoOverlapConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\), hashtext\(\$2\)\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments" WHERE barbershop_id = \$1 AND date = \$2 AND canceled = \$3 AND start_time <= \$4 AND end_time >= \$5$`).
		WithArgs("shop1", "2025-10-20", false, "09:30", "09:00").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.CreateIfNoOverlap(context.Background(), pendingAppointment())
	assert.ErrorIs(t, err, domain.ErrOverlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}
