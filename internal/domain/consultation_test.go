package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge-ng/consultation-service/pkg/types"
)

func TestConsultationStatus_IsValid(t *testing.T) {
	require.Len(t, ValidStatuses, 6)
	for _, s := range ValidStatuses {
		assert.True(t, s.IsValid(), string(s))
	}

	assert.False(t, ConsultationStatus("archived").IsValid())
	assert.False(t, ConsultationStatus("").IsValid())
	assert.False(t, ConsultationStatus("PENDING").IsValid())
}

func TestConsultationStatus_IsTerminal(t *testing.T) {
	require.Len(t, TerminalStatuses, 3)
	for _, s := range TerminalStatuses {
		assert.True(t, s.IsTerminal(), string(s))
	}

	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
}

func TestConsultation_IsActive(t *testing.T) {
	c := Consultation{Status: StatusPending}
	assert.True(t, c.IsActive())

	c.Status = StatusCompleted
	assert.True(t, c.IsActive())

	// Only cancellation frees the slot
	c.Status = StatusCancelled
	assert.False(t, c.IsActive())
}

func TestConsultation_CanBeCancelled(t *testing.T) {
	c := Consultation{Status: StatusPending}
	assert.True(t, c.CanBeCancelled())

	c.Status = StatusConfirmed
	assert.True(t, c.CanBeCancelled())

	c.Status = StatusInProgress
	assert.False(t, c.CanBeCancelled())

	c.Status = StatusCompleted
	assert.False(t, c.CanBeCancelled())
}

func TestConsultation_BookedInterval(t *testing.T) {
	c := Consultation{
		SlotStart: types.TimeString("09:00"),
		SlotEnd:   types.TimeString("09:30"),
	}
	assert.True(t, c.BookedInterval().Equal(slot("09:00", "09:30")))
}
