// Package kafka adapts the attempt-change event stream to and from the
// lockout engine. Delivery is at-least-once: offsets are committed only after
// an event is fully handled, so the engine's idempotence is what makes
// redelivery safe.
package kafka

import (
	"encoding/json"
	"fmt"

	"credlock/internal/lockout/models"
)

// wireCounter mirrors the attempt-record snapshot on the wire.
type wireCounter struct {
	Count int `json:"count"`
}

// wireEvent is the published form of an AttemptChangeEvent:
//
//	{ "identity": "alice", "before": {"count": 2} | null, "after": {"count": 3} | null }
//
// A null before means the record did not previously exist; a null after means
// it was deleted.
type wireEvent struct {
	Identity string       `json:"identity"`
	Before   *wireCounter `json:"before"`
	After    *wireCounter `json:"after"`
}

// EncodeEvent serializes an event for publishing.
func EncodeEvent(event models.AttemptChangeEvent) ([]byte, error) {
	w := wireEvent{Identity: event.Identity}
	if event.BeforeCount > 0 {
		w.Before = &wireCounter{Count: event.BeforeCount}
	}
	if event.AfterCount != nil {
		w.After = &wireCounter{Count: *event.AfterCount}
	}
	return json.Marshal(w)
}

// DecodeEvent parses a wire payload into an AttemptChangeEvent.
func DecodeEvent(payload []byte) (models.AttemptChangeEvent, error) {
	var w wireEvent
	if err := json.Unmarshal(payload, &w); err != nil {
		return models.AttemptChangeEvent{}, fmt.Errorf("decode attempt change: %w", err)
	}
	if w.Identity == "" {
		return models.AttemptChangeEvent{}, fmt.Errorf("decode attempt change: identity is required")
	}

	event := models.AttemptChangeEvent{Identity: w.Identity}
	if w.Before != nil {
		event.BeforeCount = w.Before.Count
	}
	if w.After != nil {
		count := w.After.Count
		event.AfterCount = &count
	}
	return event, nil
}
