// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"pethub/config"
	"pethub/internal/domain/service"
)

// defaultPolicy applies when no password strength policy is configured.
var defaultPolicy = config.PasswordStrengthConfig{
	MinLength:        8,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
	RequireSpecial:   true,
	MaxLength:        72, // bcrypt input limit
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := defaultPolicy
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}
	if policy.MaxLength <= 0 || policy.MaxLength > 72 {
		policy.MaxLength = 72
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks a plaintext password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.policy.MinLength {
		return errors.Errorf("password must be at least %d characters", h.policy.MinLength)
	}
	if len(password) > h.policy.MaxLength {
		return errors.Errorf("password must be at most %d characters", h.policy.MaxLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if h.policy.RequireUppercase && !hasUpper {
		return errors.New("password must contain an uppercase letter")
	}
	if h.policy.RequireLowercase && !hasLower {
		return errors.New("password must contain a lowercase letter")
	}
	if h.policy.RequireNumbers && !hasDigit {
		return errors.New("password must contain a digit")
	}
	if h.policy.RequireSpecial && !hasSpecial {
		return errors.New("password must contain a special character")
	}

	return nil
}
