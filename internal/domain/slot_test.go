package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotStatusValid(t *testing.T) {
	for _, status := range []SlotStatus{SlotStatusAvailable, SlotStatusPending, SlotStatusBooked} {
		assert.True(t, status.Valid(), "status=%s", status)
	}

	for _, status := range []SlotStatus{"", "available", "CANCELLED", "UNKNOWN"} {
		assert.False(t, status.Valid(), "status=%s", status)
	}
}

func TestRequestStatusValid(t *testing.T) {
	for _, status := range []RequestStatus{RequestStatusPending, RequestStatusAccepted, RequestStatusDeclined} {
		assert.True(t, status.Valid(), "status=%s", status)
	}

	for _, status := range []RequestStatus{"", "pending", "REJECTED"} {
		assert.False(t, status.Valid(), "status=%s", status)
	}
}

func TestSlotStateHelpers(t *testing.T) {
	s := &Slot{Status: SlotStatusAvailable}
	assert.True(t, s.IsAvailable())
	assert.False(t, s.IsPending())
	assert.False(t, s.IsBooked())

	s.Status = SlotStatusPending
	assert.True(t, s.IsPending())

	s.Status = SlotStatusBooked
	assert.True(t, s.IsBooked())
}
