package domain

import (
	"fmt"
	"strings"
	"time"
)

// Event names a performance metric reported for an ad set.
type Event string

const (
	EventCPA          Event = "cpa"
	EventPurchase     Event = "purchase"
	EventAddToCart    Event = "add_to_cart"
	EventRegistration Event = "registration"
	EventContentView  Event = "content_view"
)

// reportFields maps events to the field names of the platform effect report.
var reportFields = map[Event]string{
	EventCPA:          "cpa",
	EventPurchase:     "purchase",
	EventAddToCart:    "addToCart",
	EventRegistration: "registration",
	EventContentView:  "contentView",
}

var eventAliases = map[string]Event{
	"cpa":           EventCPA,
	"purchase":      EventPurchase,
	"purchases":     EventPurchase,
	"add to cart":   EventAddToCart,
	"add_to_cart":   EventAddToCart,
	"registration":  EventRegistration,
	"registrations": EventRegistration,
	"content view":  EventContentView,
	"content_view":  EventContentView,
}

// ParseEvent resolves canonical names and dashboard labels such as
// "Add to Cart".
func ParseEvent(s string) (Event, error) {
	if e, ok := eventAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return e, nil
	}
	return "", &ValidationError{Field: "event", Message: fmt.Sprintf("unsupported event %q", s)}
}

// Valid reports whether e is a known event.
func (e Event) Valid() bool {
	_, ok := reportFields[e]
	return ok
}

// ReportField returns the name of the report column carrying e.
func (e Event) ReportField() string {
	return reportFields[e]
}

// Events lists the supported events in a stable order.
func Events() []Event {
	return []Event{EventCPA, EventPurchase, EventAddToCart, EventRegistration, EventContentView}
}

// MetricSnapshot holds the event values of one ad set over a reporting
// window. Events the platform did not report are absent from Values.
type MetricSnapshot struct {
	UnitID      int64
	WindowStart time.Time
	WindowEnd   time.Time
	Values      map[Event]float64
}

// Value returns the value reported for e.
func (m MetricSnapshot) Value(e Event) (float64, bool) {
	v, ok := m.Values[e]
	return v, ok
}
