package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbercraft/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus moves ap to next, stamping the transition time and
// keeping the slot key in step with whether the slot is still held.
func ApplyStatus(ap *models.Appointment, next Status, now time.Time) {
	prev := Status(ap.Status)
	ap.Status = string(next)

	if next == StatusCancelled && prev != StatusCancelled {
		ap.CancelledAt = &now
	}
	if next == StatusCompleted && prev != StatusCompleted {
		ap.CompletedAt = &now
	}
	if next != StatusCancelled {
		ap.CancelledAt = nil
	}

	SyncSlotKey(ap)
}

// SyncSlotKey recomputes the unique slot column from the current fields.
func SyncSlotKey(ap *models.Appointment) {
	if !Status(ap.Status).HoldsSlot() {
		ap.SlotKey = nil
		return
	}
	key := SlotOf(ap).Key()
	ap.SlotKey = &key
}
