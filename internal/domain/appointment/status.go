package appointment

import (
	"net/http"

	"github.com/BruksfildServices01/barbercraft/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var (
	ErrSlotTaken       = httperr.ErrBusiness(http.StatusBadRequest, "This time slot is already booked")
	ErrNotFound        = httperr.ErrBusiness(http.StatusNotFound, "Appointment not found")
	ErrNotFoundOrScope = httperr.ErrBusiness(http.StatusNotFound, "Appointment not found or access denied")
	ErrInvalidStatus   = httperr.ErrBusiness(http.StatusBadRequest, "Invalid status")
	ErrInvalidService  = httperr.ErrBusiness(http.StatusBadRequest, "Invalid service")
	ErrInvalidStaff    = httperr.ErrBusiness(http.StatusBadRequest, "Invalid staff member")
	ErrInvalidDateTime = httperr.ErrBusiness(http.StatusBadRequest, "Invalid date or time")
	ErrNothingToUpdate = httperr.ErrBusiness(http.StatusBadRequest, "No fields to update")
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusConfirmed, StatusPending, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// InitialStatus is the status of a freshly booked appointment.
func InitialStatus() Status {
	return StatusConfirmed
}

// HoldsSlot reports whether an appointment in this status occupies its slot.
func (s Status) HoldsSlot() bool {
	return s != StatusCancelled
}
