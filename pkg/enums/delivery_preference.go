package enums

import "fmt"

// DeliveryPreference is the stable delivery choice stored on orders. It is
// localized only at render time so backend grouping stays language
// independent.
type DeliveryPreference string

const (
	DeliveryAtTheDoor DeliveryPreference = "door"
	DeliveryHandToMe  DeliveryPreference = "hand"
)

var validDeliveryPreferences = []DeliveryPreference{
	DeliveryAtTheDoor,
	DeliveryHandToMe,
}

// String implements fmt.Stringer.
func (d DeliveryPreference) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DeliveryPreference.
func (d DeliveryPreference) IsValid() bool {
	for _, candidate := range validDeliveryPreferences {
		if candidate == d {
			return true
		}
	}
	return false
}

// TranslationKey returns the i18n key used to render the preference.
func (d DeliveryPreference) TranslationKey() string {
	switch d {
	case DeliveryHandToMe:
		return "handToMe"
	default:
		return "atTheDoor"
	}
}

// ParseDeliveryPreference converts raw input into a DeliveryPreference.
func ParseDeliveryPreference(value string) (DeliveryPreference, error) {
	for _, candidate := range validDeliveryPreferences {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery preference %q", value)
}
