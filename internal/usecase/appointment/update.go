package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	"github.com/BruksfildServices01/barbercraft/internal/domain/access"
	domain "github.com/BruksfildServices01/barbercraft/internal/domain/appointment"
	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/timezone"
	"github.com/BruksfildServices01/barbercraft/internal/validators"
)

// UpdateAppointmentInput holds only the fields the caller sent.
// StaffSet with a nil StaffID unassigns the appointment.
type UpdateAppointmentInput struct {
	ID    uint
	Scope access.Scope

	ServiceID *uint
	StaffSet  bool
	StaffID   *uint
	Date      *string
	Time      *string
	Notes     *string
	Status    *string
}

func (in UpdateAppointmentInput) empty() bool {
	return in.ServiceID == nil && !in.StaffSet && in.Date == nil &&
		in.Time == nil && in.Notes == nil && in.Status == nil
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(repo domain.Repository, audit *audit.Dispatcher) *UpdateAppointment {
	return &UpdateAppointment{repo: repo, audit: audit}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*dto.AppointmentView, error) {

	if in.empty() {
		return nil, domain.ErrNothingToUpdate
	}

	ap, err := uc.repo.GetAppointment(ctx, in.ID, in.Scope)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, domain.ErrNotFoundOrScope
		}
		return nil, err
	}
	before := domain.SlotOf(ap)
	wasLive := domain.Status(ap.Status).HoldsSlot()

	// --------------------------------------------------
	// Apply fields
	// --------------------------------------------------
	if in.ServiceID != nil {
		if _, err := uc.repo.GetService(ctx, *in.ServiceID); err != nil {
			if httperr.IsNotFound(err) {
				return nil, domain.ErrInvalidService
			}
			return nil, err
		}
		ap.ServiceID = *in.ServiceID
	}
	if in.StaffSet {
		if in.StaffID != nil {
			if _, err := uc.repo.GetStaff(ctx, *in.StaffID); err != nil {
				if httperr.IsNotFound(err) {
					return nil, domain.ErrInvalidStaff
				}
				return nil, err
			}
		}
		ap.StaffID = in.StaffID
	}
	if in.Date != nil {
		if !validators.IsDate(*in.Date) {
			return nil, domain.ErrInvalidDateTime
		}
		ap.Date = *in.Date
	}
	if in.Time != nil {
		if !validators.IsClock(*in.Time) {
			return nil, domain.ErrInvalidDateTime
		}
		ap.Time = *in.Time
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	status := domain.Status(ap.Status)
	if in.Status != nil {
		if status, err = domain.ParseStatus(*in.Status); err != nil {
			return nil, err
		}
	}
	domain.ApplyStatus(ap, status, timezone.Now())

	// --------------------------------------------------
	// Persist; re-check the slot when it is newly held
	// --------------------------------------------------
	after := domain.SlotOf(ap)
	needsCheck := status.HoldsSlot() && (!wasLive || !before.SameAs(after))

	if needsCheck {
		err = uc.repo.InSlotTx(ctx, after, func(tx domain.Repository) error {
			if err := assertSlotFree(ctx, tx, after, ap.ID); err != nil {
				return err
			}
			return tx.UpdateAppointment(ctx, ap)
		})
	} else {
		err = uc.repo.UpdateAppointment(ctx, ap)
	}
	if httperr.IsUniqueViolation(err) {
		err = domain.ErrSlotTaken
	}
	if errors.Is(err, domain.ErrSlotTaken) {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.Scope.UserID,
			Action:   audit.ActionAppointmentConflict,
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Scope.UserID,
		Action:   audit.ActionAppointmentUpdated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	return uc.repo.GetAppointmentView(ctx, ap.ID, access.System())
}
