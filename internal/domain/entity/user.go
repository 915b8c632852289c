package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identified by its lower-cased email.
type User struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
