package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user. Identity issuance is
// handled by an external provider; this service only consumes the user ID
// carried in the access token.
type User struct {
	ID    uuid.UUID
	Email string
	Name  string
	// Personalization is free-form profile text included in generation
	// prompts ("about the user"). Nil means none is set.
	Personalization *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
