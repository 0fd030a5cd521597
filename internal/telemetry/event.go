package telemetry

import "time"

type EventType string

const (
	EventEntityInserted  EventType = "entity_inserted"
	EventInsertRejected  EventType = "insert_rejected"
	EventSummaryComputed EventType = "summary_computed"
	EventSummaryFailed   EventType = "summary_failed"
	EventNameNormalized  EventType = "name_normalized"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
