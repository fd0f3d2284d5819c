// Package model contains the GORM persistence structs mirroring the
// database tables. They stay out of the domain layer so schema concerns
// never leak into entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	FullName      string    `gorm:"type:varchar(100);not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	Role          string    `gorm:"type:varchar(20);not null;default:'individual';index"`
	Phone         string    `gorm:"type:varchar(50)"`
	Address       string    `gorm:"type:text"`
	AvatarURL     string    `gorm:"type:text"`
	EmailVerified bool      `gorm:"not null;default:false"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Pets    []PetModel        `gorm:"foreignKey:OwnerID"`
	Devices []UserDeviceModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
