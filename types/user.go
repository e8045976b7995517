package types

import "time"

// User represents an account that can sign in to the admin panel.
type User struct {
	// ID is the unique identifier of the user. It is assigned by the
	// record store as the registration time in Unix milliseconds.
	ID int64 `json:"id"`

	// Email is the user's sign-in address. Unique across all users.
	Email string `json:"email"`

	// Name is the user's display name.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}
