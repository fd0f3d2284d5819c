package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePetQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	petID := uuid.New()

	qrBytes, err := service.GeneratePetQR(petID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePetQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GeneratePetQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParsePetQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	petID := uuid.New()

	data := QRCodeData{
		PetID: petID.String(),
		Type:  "pet_listing",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParsePetQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, petID, parsedID)
}

func TestQRCodeService_ParsePetQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParsePetQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParsePetQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		PetID: uuid.New().String(),
		Type:  "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParsePetQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParsePetQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		PetID: "not-a-valid-uuid",
		Type:  "pet_listing",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParsePetQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse pet ID")
}
