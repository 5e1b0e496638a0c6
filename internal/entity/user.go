package entity

import (
	"time"

	"github.com/go-openapi/strfmt"
)

// User - an account able to own subscriptions
type User struct {
	ID           strfmt.UUID
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Session - bearer token issued on login
type Session struct {
	Token     string
	UserID    strfmt.UUID
	ExpiresAt time.Time
}
