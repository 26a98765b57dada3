package domain

// BatchOutcome aggregates the result of a batch acknowledgment call.
// It is an ephemeral value, never persisted. Success is true only when
// every item in the batch succeeded; Errors holds one human-readable
// message per failed item, referencing its 1-based position in the
// input batch, in input order.
type BatchOutcome struct {
	Success      bool
	TotalCount   int
	SuccessCount int
	FailedCount  int
	Errors       []string
}
