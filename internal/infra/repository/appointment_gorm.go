package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbercraft/internal/domain/appointment"
	"github.com/BruksfildServices01/barbercraft/internal/domain/access"
	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/models"
)

const appointmentViewSelect = `a.*,
	s.name AS service_name, s.price AS service_price, s.duration AS service_duration,
	st.name AS staff_name, u.username AS username, u.name AS user_name`

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AppointmentGormRepository) GetStaff(ctx context.Context, id uint) (*models.Staff, error) {
	var s models.Staff
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// --------------------------------------------------
// Slot
// --------------------------------------------------

func (r *AppointmentGormRepository) InSlotTx(
	ctx context.Context,
	slot domain.Slot,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", slot.LockKey()).Error; err != nil {
				return err
			}
		}
		return fn(&AppointmentGormRepository{db: tx})
	})
}

func (r *AppointmentGormRepository) ListLiveAtSlot(
	ctx context.Context,
	date, clock string,
	excludeID uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where("date = ? AND time = ? AND status <> ?", date, clock, string(domain.StatusCancelled))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var apps []models.Appointment
	if err := q.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
	scope access.Scope,
) (bool, error) {

	q := r.db.WithContext(ctx).Where("id = ?", id)
	if owner := scope.OwnerFilter(); owner != nil {
		q = q.Where("user_id = ?", *owner)
	}

	res := q.Delete(&models.Appointment{})
	return res.RowsAffected > 0, res.Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
	scope access.Scope,
) (*models.Appointment, error) {

	q := r.db.WithContext(ctx).Where("id = ?", id)
	if owner := scope.OwnerFilter(); owner != nil {
		q = q.Where("user_id = ?", *owner)
	}

	var ap models.Appointment
	if err := q.First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Enriched reads
// --------------------------------------------------

func (r *AppointmentGormRepository) views(ctx context.Context, scope access.Scope) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select(appointmentViewSelect).
		Joins("LEFT JOIN services s ON a.service_id = s.id").
		Joins("LEFT JOIN staff st ON a.staff_id = st.id").
		Joins("LEFT JOIN users u ON a.user_id = u.id")
	if owner := scope.OwnerFilter(); owner != nil {
		q = q.Where("a.user_id = ?", *owner)
	}
	return q
}

func (r *AppointmentGormRepository) GetAppointmentView(
	ctx context.Context,
	id uint,
	scope access.Scope,
) (*dto.AppointmentView, error) {

	var rows []dto.AppointmentView
	if err := r.views(ctx, scope).Where("a.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *AppointmentGormRepository) ListAppointmentViews(
	ctx context.Context,
	scope access.Scope,
) ([]dto.AppointmentView, error) {

	rows := []dto.AppointmentView{}
	if err := r.views(ctx, scope).
		Order("a.date DESC, a.time DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

// ListBookedTimes returns the times held on date. With a staff filter
// only that member's and unassigned appointments count.
func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	date string,
	staffID *uint,
) ([]string, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ? AND status <> ?", date, string(domain.StatusCancelled))
	if staffID != nil {
		q = q.Where("(staff_id = ? OR staff_id IS NULL)", *staffID)
	}

	var times []string
	if err := q.Distinct().Pluck("time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
