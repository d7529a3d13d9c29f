package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	"github.com/BruksfildServices01/barbercraft/internal/domain/access"
	domain "github.com/BruksfildServices01/barbercraft/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(repo domain.Repository, audit *audit.Dispatcher) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, audit: audit}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id uint, scope access.Scope) error {
	ok, err := uc.repo.DeleteAppointment(ctx, id, scope)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFoundOrScope
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &scope.UserID,
		Action:   audit.ActionAppointmentDeleted,
		Entity:   "appointment",
		EntityID: &id,
	})
	return nil
}
