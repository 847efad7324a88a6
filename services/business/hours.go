package business

import (
	"fmt"
	"regexp"

	"marketdesk/models"
)

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateHours checks the business-hours shape: lowercase weekday keys,
// 24-hour "HH:MM" open/close values, open strictly before close. Closed days
// are simply absent from the map, so an empty map is valid.
func ValidateHours(hours models.BusinessHours) error {
	for day, window := range hours {
		if !weekdays[day] {
			return fmt.Errorf("unknown weekday %q in business hours", day)
		}
		if !clockRe.MatchString(window.Open) {
			return fmt.Errorf("invalid open time %q for %s, want 24-hour HH:MM", window.Open, day)
		}
		if !clockRe.MatchString(window.Close) {
			return fmt.Errorf("invalid close time %q for %s, want 24-hour HH:MM", window.Close, day)
		}
		// "HH:MM" strings compare correctly as times.
		if window.Open >= window.Close {
			return fmt.Errorf("open time %s is not before close time %s on %s", window.Open, window.Close, day)
		}
	}
	return nil
}
