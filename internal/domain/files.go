package domain

import "time"

// Status tracks a report file through the ingest pipeline.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusError      Status = "error"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusDone, StatusError:
		return true
	default:
		return false
	}
}

type File struct {
	Name         string     `db:"name"          json:"name"`
	Status       Status     `db:"status"        json:"status"`
	ErrorMessage string     `db:"error_message" json:"error_message,omitempty"`
	ProcessedAt  *time.Time `db:"processed_at"  json:"processed_at,omitempty"`
}
