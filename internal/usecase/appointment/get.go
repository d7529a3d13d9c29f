package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbercraft/internal/domain/access"
	domain "github.com/BruksfildServices01/barbercraft/internal/domain/appointment"
	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute answers not found for rows outside scope so ids do not leak.
func (uc *GetAppointment) Execute(ctx context.Context, id uint, scope access.Scope) (*dto.AppointmentView, error) {
	v, err := uc.repo.GetAppointmentView(ctx, id, scope)
	if httperr.IsNotFound(err) {
		return nil, domain.ErrNotFound
	}
	return v, err
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(ctx context.Context, scope access.Scope) ([]dto.AppointmentView, error) {
	return uc.repo.ListAppointmentViews(ctx, scope)
}
