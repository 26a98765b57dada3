package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies log entries. Mutation is owned by an external
// category-management system; this core only reads the distribution
// configuration.
type Category struct {
	ID         uuid.UUID
	Plant      string
	Name       string
	Distribute bool
	CreatedAt  time.Time
}
