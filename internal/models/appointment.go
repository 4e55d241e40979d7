package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// Data no formato 2006-01-02; horários no formato HH:MM.
	Date      string `gorm:"size:10;not null;index:idx_appointments_shop_date" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	// Sempre calculado a partir da duração do serviço, nunca vem do cliente.
	EndTime string `gorm:"size:5;not null" json:"end_time"`

	Canceled bool `gorm:"not null" json:"canceled"`

	CustomerID string `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BarbershopID string     `gorm:"type:uuid;not null;index:idx_appointments_shop_date" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID string  `gorm:"type:uuid;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
