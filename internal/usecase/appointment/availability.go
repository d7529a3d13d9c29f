package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbercraft/internal/domain/appointment"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/validators"
)

var (
	errAvailabilityArgs = httperr.Validation("Date and serviceId are required")
	errInvalidDate      = httperr.Validation("Invalid date")
	errServiceNotFound  = httperr.NotFoundErr("Service not found")
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(ctx context.Context, in domain.AvailabilityInput) ([]string, error) {
	if in.Date == "" || in.ServiceID == 0 {
		return nil, errAvailabilityArgs
	}
	if !validators.IsDate(in.Date) {
		return nil, errInvalidDate
	}

	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		if httperr.IsNotFound(err) {
			return nil, errServiceNotFound
		}
		return nil, err
	}

	booked, err := uc.repo.ListBookedTimes(ctx, in.Date, in.StaffID)
	if err != nil {
		return nil, err
	}
	return domain.FreeSlots(booked), nil
}
