package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePetQR generates a QR code that links to a pet's adoption listing
	GeneratePetQR(petID uuid.UUID) ([]byte, error)

	// ParsePetQR parses QR code data and returns the pet ID
	ParsePetQR(qrData string) (uuid.UUID, error)
}
