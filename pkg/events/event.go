package events

import "time"

// Event is a workspace change published on the in-process bus and
// forwarded to NATS.
type Event interface {
	// EventType returns the event code, e.g. "FEATURE_CREATED".
	EventType() string

	// Payload carries ids as strings so it survives a JSON round trip.
	Payload() map[string]interface{}

	Timestamp() time.Time
}

// BaseEvent is the only Event implementation; constructors in this package
// fill it in.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// PageID returns the page the event belongs to, or "" when the payload has
// none.
func PageID(e Event) string {
	id, _ := e.Payload()["page_id"].(string)
	return id
}
