// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account lifecycle event types emitted by the user workflow.
const (
	// UserEventTypeVerificationIssued is emitted when a registration
	// verification code is issued; the mail pipeline delivers the code.
	UserEventTypeVerificationIssued = "user_verification_code_issued"
)

// User is the core entity in the system, representing a unique account.
// Pets owned by a user and pets adopted by a user are derived from the pets
// table through OwnerID and AdoptedBy rather than stored on the user itself.
type User struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email         string    // The user's primary contact email, used as the login identifier.
	FullName      string    // The user's display name or real name.
	PasswordHash  string    // The bcrypt-hashed login password.
	Role          Role      // The user's role on the platform (individual, shelter, admin).
	Phone         string    // Optional contact phone number.
	Address       string    // Optional home or shelter address.
	AvatarURL     string    // Optional profile image reference.
	EmailVerified bool      // Whether the user has completed email verification.
	IsActive      bool      // Whether the account is active; inactive accounts cannot log in.
	CreatedAt     time.Time // Timestamp of when this user account was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this user's data.
}
