package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint  `gorm:"not null;index" json:"user_id"`
	ServiceID uint  `gorm:"not null" json:"service_id"`
	StaffID   *uint `json:"staff_id"`

	Date string `gorm:"size:10;not null;index:idx_appointments_slot" json:"date"`
	Time string `gorm:"size:5;not null;index:idx_appointments_slot" json:"time"`

	Status     string  `gorm:"size:20;not null;default:'confirmed'" json:"status"`
	Notes      string  `gorm:"size:500" json:"notes"`
	TotalPrice float64 `json:"total_price"`

	// SlotKey is set while the appointment holds its slot and NULL once cancelled.
	SlotKey *string `gorm:"size:40;uniqueIndex" json:"-"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
