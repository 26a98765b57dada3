package domain

import (
	"time"

	"github.com/google/uuid"
)

// LogFilter contains filtering/pagination parameters for log listings.
// Plant is required; all other filters are optional and conjunctive.
// Since is an exclusive lower bound on CreatedAt: only entries strictly
// newer than Since are returned, so a polling client that advances Since
// to the newest CreatedAt it has seen never receives a duplicate.
type LogFilter struct {
	Plant      string
	WorkCenter *string
	CategoryID *uuid.UUID
	Since      *time.Time
	Limit      int
	Offset     int
}
