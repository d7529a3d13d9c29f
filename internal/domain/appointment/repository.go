package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbercraft/internal/domain/access"
	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetStaff(ctx context.Context, id uint) (*models.Staff, error)

	// -------- Slot (conflict) --------

	// InSlotTx runs fn in one transaction that holds the lock for slot's
	// date and time. fn must only use the repository it is given.
	InSlotTx(ctx context.Context, slot Slot, fn func(tx Repository) error) error

	ListLiveAtSlot(ctx context.Context, date, clock string, excludeID uint) ([]models.Appointment, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	DeleteAppointment(ctx context.Context, id uint, scope access.Scope) (bool, error)
	GetAppointment(ctx context.Context, id uint, scope access.Scope) (*models.Appointment, error)

	// -------- Enriched reads --------
	GetAppointmentView(ctx context.Context, id uint, scope access.Scope) (*dto.AppointmentView, error)
	ListAppointmentViews(ctx context.Context, scope access.Scope) ([]dto.AppointmentView, error)

	// -------- Availability --------
	ListBookedTimes(ctx context.Context, date string, staffID *uint) ([]string, error)
}
