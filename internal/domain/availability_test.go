package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge-ng/consultation-service/pkg/types"
)

func slot(start, end string) TimeRange {
	return TimeRange{Start: types.TimeString(start), End: types.TimeString(end)}
}

func TestTimeRange_Equal(t *testing.T) {
	assert.True(t, slot("09:00", "09:30").Equal(slot("09:00", "09:30")))

	// Overlap without exact {start, end} match is not equality
	assert.False(t, slot("09:00", "09:30").Equal(slot("09:00", "10:00")))
	assert.False(t, slot("09:00", "09:30").Equal(slot("09:15", "09:45")))
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "thursday", WeekdayName(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "sunday", WeekdayName(time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)))
}

func TestAvailabilityTemplate_Day(t *testing.T) {
	template := AvailabilityTemplate{
		Days: map[string]DayTemplate{
			"thursday": {Available: true, Slots: []TimeRange{slot("09:00", "09:30")}},
		},
	}

	day, ok := template.Day("Thursday")
	require.True(t, ok)
	assert.True(t, day.Available)
	assert.Len(t, day.Slots, 1)

	_, ok = template.Day("friday")
	assert.False(t, ok)
}

func TestAvailabilityTemplate_IsEmpty(t *testing.T) {
	var template AvailabilityTemplate
	assert.True(t, template.IsEmpty())

	template.Days = map[string]DayTemplate{"monday": {}}
	assert.False(t, template.IsEmpty())
}

func TestAvailabilityTemplate_Validate(t *testing.T) {
	valid := AvailabilityTemplate{
		Days: map[string]DayTemplate{
			"monday":   {Available: true, Slots: []TimeRange{slot("09:00", "09:30"), slot("09:30", "10:00")}},
			"saturday": {Available: false},
		},
		Timezone:            "Africa/Lagos",
		SlotDurationMinutes: 30,
	}
	assert.NoError(t, valid.Validate())

	unknownDay := AvailabilityTemplate{
		Days: map[string]DayTemplate{"someday": {Available: true}},
	}
	assert.Error(t, unknownDay.Validate())

	badSlot := AvailabilityTemplate{
		Days: map[string]DayTemplate{
			"monday": {Available: true, Slots: []TimeRange{slot("09:00", "25:00")}},
		},
	}
	assert.Error(t, badSlot.Validate())

	inverted := AvailabilityTemplate{
		Days: map[string]DayTemplate{
			"monday": {Available: true, Slots: []TimeRange{slot("10:00", "09:00")}},
		},
	}
	assert.Error(t, inverted.Validate())

	badTimezone := AvailabilityTemplate{
		Days:     map[string]DayTemplate{"monday": {Available: true}},
		Timezone: "Not/AZone",
	}
	assert.Error(t, badTimezone.Validate())
}

func TestAvailabilityTemplate_JSONRoundTrip(t *testing.T) {
	raw := `{
		"thursday": {"available": true, "slots": [{"start": "09:00", "end": "09:30"}]},
		"sunday": {"available": false, "slots": []},
		"timezone": "Africa/Lagos",
		"slotDurationMinutes": 30,
		"legacyField": "ignored"
	}`

	var template AvailabilityTemplate
	require.NoError(t, json.Unmarshal([]byte(raw), &template))

	assert.Equal(t, "Africa/Lagos", template.Timezone)
	assert.Equal(t, 30, template.SlotDurationMinutes)

	day, ok := template.Day("thursday")
	require.True(t, ok)
	assert.True(t, day.Available)
	require.Len(t, day.Slots, 1)
	assert.True(t, day.Slots[0].Equal(slot("09:00", "09:30")))

	day, ok = template.Day("sunday")
	require.True(t, ok)
	assert.False(t, day.Available)

	encoded, err := json.Marshal(template)
	require.NoError(t, err)

	var again AvailabilityTemplate
	require.NoError(t, json.Unmarshal(encoded, &again))
	assert.Equal(t, template.Days, again.Days)
	assert.Equal(t, template.Timezone, again.Timezone)
	assert.Equal(t, template.SlotDurationMinutes, again.SlotDurationMinutes)
}

func TestAvailabilityTemplate_Location(t *testing.T) {
	template := AvailabilityTemplate{Timezone: "Africa/Lagos"}
	loc := template.Location()
	require.NotNil(t, loc)
	assert.Equal(t, "Africa/Lagos", loc.String())

	template.Timezone = ""
	assert.Equal(t, time.UTC, template.Location())
}
