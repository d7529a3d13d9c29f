package audit

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbercraft/internal/models"
)

const (
	ActionUserRegistered      = "user_registered"
	ActionAppointmentCreated  = "appointment_created"
	ActionAppointmentConflict = "appointment_conflict"
	ActionAppointmentUpdated  = "appointment_updated"
	ActionAppointmentDeleted  = "appointment_deleted"
	ActionOrderCheckedOut     = "order_checked_out"
	ActionServiceCreated      = "service_created"
	ActionServiceUpdated      = "service_updated"
	ActionServiceDeleted      = "service_deleted"
	ActionProductCreated      = "product_created"
	ActionProductUpdated      = "product_updated"
	ActionProductDeleted      = "product_deleted"
	ActionImageUploaded       = "image_uploaded"
	ActionReviewCreated       = "review_created"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

// Filter narrows List. Zero values are ignored.
type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

func (f *Filter) normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
}

type Page struct {
	Logs  []models.AuditLog `json:"logs"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
}

func (l *Logger) List(ctx context.Context, f Filter) (Page, error) {
	f.normalize()

	q := l.db.WithContext(ctx).Model(&models.AuditLog{})
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Page{}, err
	}

	logs := []models.AuditLog{}
	if err := q.Order("created_at DESC, id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return Page{}, err
	}

	return Page{Logs: logs, Page: f.Page, Limit: f.Limit, Total: total}, nil
}
