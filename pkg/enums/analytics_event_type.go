package enums

import "fmt"

// AnalyticsEventType is the canonical event_type accepted by tracking.
type AnalyticsEventType string

const (
	AnalyticsEventView      AnalyticsEventType = "view"
	AnalyticsEventAddToCart AnalyticsEventType = "add_to_cart"
	// AnalyticsEventPurchase is emitted internally at checkout and is
	// not accepted from the public tracking endpoint.
	AnalyticsEventPurchase AnalyticsEventType = "purchase"
)

var validAnalyticsEventTypes = []AnalyticsEventType{
	AnalyticsEventView,
	AnalyticsEventAddToCart,
	AnalyticsEventPurchase,
}

var trackableAnalyticsEventTypes = []AnalyticsEventType{
	AnalyticsEventView,
	AnalyticsEventAddToCart,
}

// IsTrackable reports whether guests may submit this event type directly.
func (a AnalyticsEventType) IsTrackable() bool {
	for _, candidate := range trackableAnalyticsEventTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (a AnalyticsEventType) String() string {
	return string(a)
}

// IsValid reports whether the value matches the canonical event_type enum.
func (a AnalyticsEventType) IsValid() bool {
	for _, candidate := range validAnalyticsEventTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAnalyticsEventType converts the raw string to AnalyticsEventType.
func ParseAnalyticsEventType(value string) (AnalyticsEventType, error) {
	for _, candidate := range validAnalyticsEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid analytics event type %q", value)
}
