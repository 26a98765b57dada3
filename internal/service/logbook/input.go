package logbook

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plantops/shiftlog-backend/internal/domain"
)

const (
	maxSubjectLen = 200
	maxMessageLen = 4000
)

// CreateLogInput carries the caller-supplied fields of a new log entry.
// ID and CreatedAt are assigned by the service.
type CreateLogInput struct {
	Plant      string
	ShopOrder  string
	StepID     string
	SplitID    string
	WorkCenter string
	Author     string
	CategoryID uuid.UUID
	Subject    string
	Message    string
}

// Validate checks required fields and length limits.
func (in CreateLogInput) Validate() error {
	var fields []domain.FieldError

	if strings.TrimSpace(in.Plant) == "" {
		fields = append(fields, domain.FieldError{Field: "plant", Message: "must not be empty"})
	}
	if strings.TrimSpace(in.Author) == "" {
		fields = append(fields, domain.FieldError{Field: "author", Message: "must not be empty"})
	}
	if in.CategoryID == uuid.Nil {
		fields = append(fields, domain.FieldError{Field: "categoryId", Message: "must not be empty"})
	}
	if strings.TrimSpace(in.Subject) == "" {
		fields = append(fields, domain.FieldError{Field: "subject", Message: "must not be empty"})
	} else if len(in.Subject) > maxSubjectLen {
		fields = append(fields, domain.FieldError{Field: "subject", Message: "too long"})
	}
	if strings.TrimSpace(in.Message) == "" {
		fields = append(fields, domain.FieldError{Field: "message", Message: "must not be empty"})
	} else if len(in.Message) > maxMessageLen {
		fields = append(fields, domain.FieldError{Field: "message", Message: "too long"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// ListLogsInput carries filter and pagination parameters for ListLogs.
// Since is an exclusive lower bound on creation time: only entries created
// strictly after it are returned.
type ListLogsInput struct {
	Plant      string
	WorkCenter string
	CategoryID uuid.UUID
	Since      *time.Time
	Page       int
	PageSize   int
}

// Validate checks the required plant and rejects negative pagination values.
// Zero page and pageSize are allowed and defaulted by the service.
func (in ListLogsInput) Validate() error {
	var fields []domain.FieldError

	if strings.TrimSpace(in.Plant) == "" {
		fields = append(fields, domain.FieldError{Field: "plant", Message: "must not be empty"})
	}
	if in.Page < 0 {
		fields = append(fields, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	if in.PageSize < 0 {
		fields = append(fields, domain.FieldError{Field: "pageSize", Message: "must be positive"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}
