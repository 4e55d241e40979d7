package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Referências
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCustomer(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *AppointmentGormRepository) GetServiceWithShop(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Preload("Barbershop").
		Where("id = ?", id).
		First(&svc).Error; err != nil {
		return nil, translate(err)
	}
	return &svc, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateIfNoOverlap roda a consulta de sobreposição e o insert na mesma
// transação. Um advisory lock transacional por (barbearia, data) serializa
// criações concorrentes; lock de linha não serve aqui porque um conjunto
// vazio não tem linha para travar e dois inserts passariam juntos.
// Limites inclusivos: start_time <= novo fim AND end_time >= novo início.
func (r *AppointmentGormRepository) CreateIfNoOverlap(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?), hashtext(?))",
			ap.BarbershopID,
			ap.Date,
		).Error; err != nil {
			return translate(err)
		}

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"barbershop_id = ? AND date = ? AND canceled = ? AND start_time <= ? AND end_time >= ?",
				ap.BarbershopID,
				ap.Date,
				false,
				ap.EndTime,
				ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return translate(err)
		}

		if count > 0 {
			return domain.ErrOverlap
		}

		return translate(tx.Create(ap).Error)
	})
}

// --------------------------------------------------
// Appointment (leitura / cancelamento)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, translate(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate(r.db.WithContext(ctx).Save(ap).Error)
}

func (r *AppointmentGormRepository) ListByCustomer(
	ctx context.Context,
	customerID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("customer_id = ?", customerID).
		Order("date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, translate(err)
	}
	return aps, nil
}

// --------------------------------------------------
// Disponibilidade
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOpeningHours(
	ctx context.Context,
	barbershopID string,
	day int,
) (*models.OpeningHours, error) {

	var oh models.OpeningHours
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND day = ?", barbershopID, day).
		First(&oh).Error; err != nil {
		return nil, translate(err)
	}
	return &oh, nil
}

func (r *AppointmentGormRepository) ListActiveForDay(
	ctx context.Context,
	barbershopID string,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"barbershop_id = ? AND date = ? AND canceled = ?",
			barbershopID, date, false,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, translate(err)
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
