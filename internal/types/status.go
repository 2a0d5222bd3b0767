package types

// Status is a type for the lifecycle status of a stored resource.
// It tracks soft deletion and archival, not invoice finalization.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
	StatusDeleted  Status = "deleted"
)
