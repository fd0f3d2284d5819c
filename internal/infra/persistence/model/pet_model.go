package model

import (
	"time"

	"github.com/google/uuid"
)

// PetModel mirrors the 'pets' table. AdditionalPhotos is stored as jsonb
// through GORM's JSON serializer.
type PetModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string     `gorm:"type:varchar(100);not null"`
	Species          string     `gorm:"type:varchar(50);not null;index"`
	Breed            string     `gorm:"type:varchar(100);not null"`
	Age              int        `gorm:"not null"`
	Gender           string     `gorm:"type:varchar(20);not null"`
	Size             string     `gorm:"type:varchar(20);not null"`
	Description      string     `gorm:"type:text"`
	PhotoURL         string     `gorm:"type:text;not null"`
	AdditionalPhotos []string   `gorm:"type:jsonb;serializer:json"`
	OwnerID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	AdoptionStatus   string     `gorm:"type:varchar(20);not null;default:'available';index"`
	IsAdopted        bool       `gorm:"not null;default:false"`
	AdoptedBy        *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	AdoptionRequests []AdoptionRequestModel `gorm:"foreignKey:PetID"`
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}
