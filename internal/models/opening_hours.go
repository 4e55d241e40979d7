package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OpeningHours struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// 0 = domingo ... 6 = sábado.
	Day         int    `gorm:"not null;uniqueIndex:idx_opening_hours_shop_day" json:"day"`
	OpeningTime string `gorm:"size:5;not null" json:"opening_time"`
	ClosingTime string `gorm:"size:5;not null" json:"closing_time"`

	BarbershopID string     `gorm:"type:uuid;not null;uniqueIndex:idx_opening_hours_shop_day" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *OpeningHours) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
