package auth

import (
	"testing"

	"pethub/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(bcrypt.MinCost))

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(bcrypt.MinCost))
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_CustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasher(testHasherConfig(customCost))

	hash, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)

	// Verify the hash uses the configured cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
		"Valid$Phrase2024",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"123", "must be at least 8 characters"},
		{"PASSWORD123!", "must contain a lowercase letter"},
		{"password123!", "must contain an uppercase letter"},
		{"PasswordABC!", "must contain a digit"},
		{"Password1234", "must contain a special character"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.Error(t, err, "Expected error for password: %s", tc.password)
		assert.Contains(t, err.Error(), tc.expectedErr)
	}
}

func TestBcryptHasher_ValidatePasswordStrength_Policy(t *testing.T) {
	cfg := &config.Config{}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:        12,
		RequireUppercase: false,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   false,
	}
	hasher := NewBcryptHasher(cfg)

	// No uppercase or special characters required by this policy.
	assert.NoError(t, hasher.ValidatePasswordStrength("longpassword123"))

	// Still shorter than the raised minimum.
	err := hasher.ValidatePasswordStrength("short123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be at least 12 characters")
}

func TestBcryptHasher_ValidatePasswordStrength_EdgeCases(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	// Empty password
	err := hasher.ValidatePasswordStrength("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be at least 8 characters")

	// Longer than the bcrypt input limit
	longPassword := "Aa1!" + string(make([]byte, 100))
	err = hasher.ValidatePasswordStrength(longPassword)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be at most 72 characters")

	// Unicode letters still satisfy the letter classes
	assert.NoError(t, hasher.ValidatePasswordStrength("Pässphräse123!"))

	// Only special characters
	err = hasher.ValidatePasswordStrength("!@#$%^&*()")
	assert.Error(t, err)
}
