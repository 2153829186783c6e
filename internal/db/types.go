package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Skill represents a stored skill. Hidden marks skills discovered by the
// analysis rather than declared by the user; Level is derived from the
// finding's confidence.
type Skill struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     int       `json:"level"`
	Hidden    bool      `json:"hidden"`
	CreatedAt time.Time `json:"created_at"`
}
