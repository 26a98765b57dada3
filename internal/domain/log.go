package domain

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry is an immutable record of a shift event, authored against a
// plant / work-center context. Entries are append-only: CreatedAt is
// assigned once at insert time and never mutated.
type LogEntry struct {
	ID         uuid.UUID
	Plant      string
	ShopOrder  string
	StepID     string
	SplitID    string
	WorkCenter string
	Author     string
	CategoryID uuid.UUID
	Subject    string
	Message    string
	CreatedAt  time.Time
}

// LogPage is one page of log entries plus pagination metadata.
type LogPage struct {
	Logs     []LogEntry
	Total    int
	Page     int
	PageSize int
}
