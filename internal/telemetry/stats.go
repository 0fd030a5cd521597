package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period          string            `json:"period"`
	EventCounts     map[EventType]int `json:"event_counts"`
	Inserts         int               `json:"inserts"`
	InsertRejects   int               `json:"insert_rejects"`
	Summaries       int               `json:"summaries"`
	SummaryFailures int               `json:"summary_failures"`
	InsertsByKind   map[string]int    `json:"inserts_by_kind"`
	FailuresByCause map[string]int    `json:"failures_by_cause"`
}

// CalculateStats computes usage stats from events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:          since.Format("2006-01-02"),
		EventCounts:     make(map[EventType]int),
		InsertsByKind:   make(map[string]int),
		FailuresByCause: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventEntityInserted:
			stats.Inserts++
			if kind, ok := metadata["kind"].(string); ok {
				stats.InsertsByKind[kind]++
			}
		case EventInsertRejected:
			stats.InsertRejects++
		case EventSummaryComputed:
			stats.Summaries++
		case EventSummaryFailed:
			stats.SummaryFailures++
			if cause, ok := metadata["cause"].(string); ok {
				stats.FailuresByCause[cause]++
			}
		}
	}

	return stats, nil
}
