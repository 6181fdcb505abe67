package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/medbridge-ng/consultation-service/pkg/types"
)

// TimeRange a concrete {start, end} time-of-day interval
type TimeRange struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Equal reports exact-pair equality on {start, end}
// This is the only comparison used for slot subtraction and membership
func (r TimeRange) Equal(other TimeRange) bool {
	return r.Start == other.Start && r.End == other.End
}

// DayTemplate recurring availability for one weekday
type DayTemplate struct {
	Available bool        `json:"available"`
	Slots     []TimeRange `json:"slots"`
}

// AvailabilityTemplate a doctor's weekly recurring open-hours definition
// Timezone and SlotDurationMinutes are advisory metadata and are not
// enforced against slot contents
type AvailabilityTemplate struct {
	Days                map[string]DayTemplate
	Timezone            string
	SlotDurationMinutes int
}

// weekdayNames fixed Sunday=0..Saturday=6 convention, matching time.Weekday
// numbering; locale-independent by construction
var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayName resolves a calendar date to its lowercase English weekday name
func WeekdayName(date time.Time) string {
	return weekdayNames[int(date.Weekday())]
}

// IsWeekdayName returns true if s names a weekday (case-insensitive)
func IsWeekdayName(s string) bool {
	s = strings.ToLower(s)
	for _, name := range weekdayNames {
		if s == name {
			return true
		}
	}
	return false
}

// Day looks up the template for a weekday name, case-insensitively
func (t *AvailabilityTemplate) Day(weekday string) (DayTemplate, bool) {
	day, ok := t.Days[strings.ToLower(weekday)]
	return day, ok
}

// IsEmpty returns true if the template defines no weekday at all
func (t *AvailabilityTemplate) IsEmpty() bool {
	return len(t.Days) == 0
}

// Validate checks the template shape: known weekday names, HH:MM slot
// bounds, start < end. Slot ordering within a day is NOT normalized:
// insertion order is preserved as given
func (t *AvailabilityTemplate) Validate() error {
	for weekday, day := range t.Days {
		if !IsWeekdayName(weekday) {
			return fmt.Errorf("unknown weekday %q", weekday)
		}
		for i, slot := range day.Slots {
			if err := slot.Start.Validate(); err != nil {
				return fmt.Errorf("%s slot %d: %v", weekday, i, err)
			}
			if err := slot.End.Validate(); err != nil {
				return fmt.Errorf("%s slot %d: %v", weekday, i, err)
			}
			if !slot.Start.IsBefore(slot.End) {
				return fmt.Errorf("%s slot %d: start %s must be before end %s",
					weekday, i, slot.Start, slot.End)
			}
		}
	}

	if t.Timezone != "" {
		if _, err := time.LoadLocation(t.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q", t.Timezone)
		}
	}

	if t.SlotDurationMinutes < 0 {
		return fmt.Errorf("slotDurationMinutes must not be negative")
	}

	return nil
}

// Location returns the template's timezone, defaulting to UTC
func (t *AvailabilityTemplate) Location() *time.Location {
	if t.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// availabilityJSON wire format: weekday names are top-level keys next to the
// metadata fields, e.g. {"thursday": {...}, "timezone": "Africa/Lagos"}
type availabilityDayJSON struct {
	Available bool        `json:"available"`
	Slots     []TimeRange `json:"slots"`
}

// MarshalJSON serializes the template in its stored wire format
func (t AvailabilityTemplate) MarshalJSON() ([]byte, error) {
	raw := make(map[string]interface{}, len(t.Days)+2)
	for weekday, day := range t.Days {
		slots := day.Slots
		if slots == nil {
			slots = []TimeRange{}
		}
		raw[strings.ToLower(weekday)] = availabilityDayJSON{
			Available: day.Available,
			Slots:     slots,
		}
	}
	if t.Timezone != "" {
		raw["timezone"] = t.Timezone
	}
	if t.SlotDurationMinutes > 0 {
		raw["slotDurationMinutes"] = t.SlotDurationMinutes
	}
	return json.Marshal(raw)
}

// UnmarshalJSON parses the stored wire format, folding weekday keys into
// Days and picking out the metadata keys
func (t *AvailabilityTemplate) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.Days = make(map[string]DayTemplate)
	t.Timezone = ""
	t.SlotDurationMinutes = 0

	for key, value := range raw {
		lower := strings.ToLower(key)
		switch {
		case IsWeekdayName(lower):
			var day availabilityDayJSON
			if err := json.Unmarshal(value, &day); err != nil {
				return fmt.Errorf("availability day %q: %w", key, err)
			}
			t.Days[lower] = DayTemplate(day)
		case lower == "timezone":
			if err := json.Unmarshal(value, &t.Timezone); err != nil {
				return fmt.Errorf("availability timezone: %w", err)
			}
		case lower == "slotdurationminutes":
			if err := json.Unmarshal(value, &t.SlotDurationMinutes); err != nil {
				return fmt.Errorf("availability slotDurationMinutes: %w", err)
			}
		default:
			// Unknown keys are ignored rather than rejected: templates are
			// replaced wholesale and old records may carry extra fields
		}
	}

	return nil
}
