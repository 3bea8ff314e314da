package domain

import "time"

// RequestStatus represents the lifecycle state of a booking request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusAccepted RequestStatus = "ACCEPTED"
	RequestStatusDeclined RequestStatus = "DECLINED"
)

// Valid reports whether the status is one of the closed set of request states
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusDeclined:
		return true
	}
	return false
}

// BookingRequest represents a customer's claim against a specific slot,
// awaiting the employee's decision. At most one PENDING request can exist
// per slot at any time; decided requests are kept as history.
type BookingRequest struct {
	ID            int64
	SlotID        int64
	CustomerName  string
	CustomerEmail string
	Status        RequestStatus
	CreatedAt     time.Time
	DecidedAt     *time.Time
}

// IsPending returns true if the request still awaits a decision
func (r *BookingRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// IsDecided returns true if the request has been accepted or declined
func (r *BookingRequest) IsDecided() bool {
	return r.Status == RequestStatusAccepted || r.Status == RequestStatusDeclined
}

// PendingRequest is a read model for the employee dashboard: a pending
// booking request together with the slot interval it targets.
type PendingRequest struct {
	RequestID     int64
	SlotID        int64
	SlotStartAt   time.Time
	SlotEndAt     time.Time
	CustomerName  string
	CustomerEmail string
	CreatedAt     time.Time
}
