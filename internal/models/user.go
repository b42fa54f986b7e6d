package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user row in the database.
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`           // Primary key
	Username     string    `json:"username" db:"username"`         // Unique username
	Email        string    `json:"email" db:"email"`               // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`           // Hashed password, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}

// User is the public user summary returned by the API.
type User struct {
	UserID    uuid.UUID `json:"user_id"`    // User identifier
	Username  string    `json:"username"`   // Username
	Email     string    `json:"email"`      // Email
	CreatedAt time.Time `json:"created_at"` // Registration timestamp
}

// Summary strips credentials from a user row.
func (u *UserDB) Summary() User {
	return User{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
