package domain

type IngestAction string

const (
	ActionCreated IngestAction = "created"
	ActionUpdated IngestAction = "updated"
)

// IngestResult reports a completed ingestion.
type IngestResult struct {
	Action      IngestAction `json:"action"`
	RecordID    int64        `json:"recordId"`
	ReferenceID string       `json:"referenceId,omitempty"`
	Category    string       `json:"category"`
	Title       string       `json:"title"`
}
