package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	"github.com/BruksfildServices01/barbercraft/internal/domain/access"
	domain "github.com/BruksfildServices01/barbercraft/internal/domain/appointment"
	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/models"
	"github.com/BruksfildServices01/barbercraft/internal/timezone"
	"github.com/BruksfildServices01/barbercraft/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID    uint
	ServiceID uint
	StaffID   *uint

	Date  string
	Time  string
	Notes string
}

var errMissingFields = httperr.Validation("Service, date, and time are required")

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*dto.AppointmentView, error) {

	// --------------------------------------------------
	// 1. Shape
	// --------------------------------------------------
	if in.ServiceID == 0 || in.Date == "" || in.Time == "" {
		return nil, errMissingFields
	}
	if !validators.IsDate(in.Date) || !validators.IsClock(in.Time) {
		return nil, domain.ErrInvalidDateTime
	}

	// --------------------------------------------------
	// 2. Catalog (price snapshot)
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, domain.ErrInvalidService
		}
		return nil, err
	}

	if in.StaffID != nil {
		if _, err := uc.repo.GetStaff(ctx, *in.StaffID); err != nil {
			if httperr.IsNotFound(err) {
				return nil, domain.ErrInvalidStaff
			}
			return nil, err
		}
	}

	ap := &models.Appointment{
		UserID:     in.UserID,
		ServiceID:  service.ID,
		StaffID:    in.StaffID,
		Date:       in.Date,
		Time:       in.Time,
		Notes:      in.Notes,
		TotalPrice: service.Price,
	}
	domain.ApplyStatus(ap, domain.InitialStatus(), timezone.Now())

	// --------------------------------------------------
	// 3. Conflict check + insert under the slot lock
	// --------------------------------------------------
	slot := domain.SlotOf(ap)
	err = uc.repo.InSlotTx(ctx, slot, func(tx domain.Repository) error {
		if err := assertSlotFree(ctx, tx, slot, 0); err != nil {
			return err
		}
		return tx.CreateAppointment(ctx, ap)
	})
	if httperr.IsUniqueViolation(err) {
		err = domain.ErrSlotTaken
	}
	if errors.Is(err, domain.ErrSlotTaken) {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.UserID,
			Action:   audit.ActionAppointmentConflict,
			Entity:   "appointment",
			Metadata: map[string]any{"date": in.Date, "time": in.Time, "staff_id": in.StaffID},
		})
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointmentView(ctx, ap.ID, access.System())
}

// assertSlotFree fails with ErrSlotTaken when a live appointment other
// than excludeID already holds a conflicting slot.
func assertSlotFree(ctx context.Context, tx domain.Repository, slot domain.Slot, excludeID uint) error {
	live, err := tx.ListLiveAtSlot(ctx, slot.Date, slot.Time, excludeID)
	if err != nil {
		return err
	}
	for i := range live {
		if domain.Conflicts(domain.SlotOf(&live[i]), slot) {
			return domain.ErrSlotTaken
		}
	}
	return nil
}
