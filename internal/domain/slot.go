package domain

import "time"

// SlotStatus represents the lifecycle state of a slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "AVAILABLE"
	SlotStatusPending   SlotStatus = "PENDING"
	SlotStatusBooked    SlotStatus = "BOOKED"
)

// Valid reports whether the status is one of the closed set of slot states
func (s SlotStatus) Valid() bool {
	switch s {
	case SlotStatusAvailable, SlotStatusPending, SlotStatusBooked:
		return true
	}
	return false
}

// Slot represents a fixed half-open time interval [StartAt, EndAt)
// offered by one employee for booking.
//
// Status transitions are owned by the booking state machine:
// AVAILABLE -> PENDING (request), PENDING -> BOOKED (accept),
// PENDING -> AVAILABLE (decline). BOOKED is terminal.
type Slot struct {
	ID         int64
	EmployeeID int64
	StartAt    time.Time
	EndAt      time.Time
	Status     SlotStatus
}

// IsAvailable returns true if the slot can be requested
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotStatusAvailable
}

// IsPending returns true if the slot has an undecided booking request
func (s *Slot) IsPending() bool {
	return s.Status == SlotStatusPending
}

// IsBooked returns true if the slot has been booked (terminal state)
func (s *Slot) IsBooked() bool {
	return s.Status == SlotStatusBooked
}

// SlotWithRequest is a read model for calendar views: a slot annotated
// with its currently associated booking request, if any. For slots with
// request history the latest request per slot is the current one.
type SlotWithRequest struct {
	Slot
	CustomerName  *string
	CustomerEmail *string
	RequestStatus *RequestStatus
}
