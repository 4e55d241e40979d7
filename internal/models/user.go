package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Papéis de usuário. Os valores são persistidos como estão, não renomear.
const (
	RoleClient = "CLIENT"
	RoleOwner  = "OWNER"
	RoleAdmin  = "ADMIN"
)

type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Phone    string `gorm:"size:20" json:"phone"`
	Role     string `gorm:"size:20;default:'CLIENT'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
