package models

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique user identifier used during authentication.
	// Uniqueness is enforced by the store.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// ResetToken is the last issued password-reset token, or empty when
	// none is outstanding. At most one live token exists per user; it is
	// cleared when the password is reset. Never serialized to JSON.
	ResetToken string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
