package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DistributionKey is the composite identity of a distribution row:
// one log entry seen from one work center.
type DistributionKey struct {
	LogID      uuid.UUID
	WorkCenter string
}

// Validate checks that both parts of the key are present.
func (k DistributionKey) Validate() error {
	var errs []FieldError
	if k.LogID == uuid.Nil {
		errs = append(errs, FieldError{Field: "log_id", Message: "required"})
	}
	if strings.TrimSpace(k.WorkCenter) == "" {
		errs = append(errs, FieldError{Field: "work_center", Message: "required"})
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func (k DistributionKey) String() string {
	return fmt.Sprintf("%s/%s", k.LogID, k.WorkCenter)
}

// Distribution tracks one work center's read state for one log entry.
// ReadAt is nil while the entry is unread; a non-nil value is the instant
// the work center last acknowledged it.
type Distribution struct {
	Key    DistributionKey
	ReadAt *time.Time
}

// IsRead returns true if the work center has acknowledged the entry.
func (d *Distribution) IsRead() bool {
	return d.ReadAt != nil
}
