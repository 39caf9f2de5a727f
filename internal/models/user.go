package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"password,omitempty" db:"password_hash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Session is what the auth endpoints report about the caller.
type Session struct {
	Active bool      `json:"active"`
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email,omitempty"`
	Roles  []string  `json:"roles,omitempty"`
}

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
