package model

import (
	"time"

	"github.com/google/uuid"
)

// AdoptionRequestModel mirrors the 'adoption_requests' table.
type AdoptionRequestModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PetID              uuid.UUID `gorm:"type:uuid;not null;index"`
	RequesterID        uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID            uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName           string    `gorm:"type:varchar(100);not null"`
	Email              string    `gorm:"type:varchar(255);not null"`
	PhoneNumber        string    `gorm:"type:varchar(50);not null"`
	Address            string    `gorm:"type:text;not null"`
	PreviousExperience string    `gorm:"type:text"`
	AdoptionReason     string    `gorm:"type:text;not null"`
	Status             string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdoptionRequestModel) TableName() string {
	return "adoption_requests"
}
