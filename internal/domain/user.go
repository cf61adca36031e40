package domain

import "time"

// User is an account that can own courses. PasswordHash holds the argon2id
// digest of the signup password; the plaintext is never stored.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	EmailAddress string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProfile is the password-free projection of a User that is safe to
// embed in API responses.
type UserProfile struct {
	ID           int64
	FirstName    string
	LastName     string
	EmailAddress string
}

// Profile strips the credential fields.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}
