package models

import "time"

type Review struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	UserID         uint    `gorm:"not null;index" json:"user_id"`
	CustomerName   string  `gorm:"size:100" json:"customer_name"`
	CustomerAvatar *string `gorm:"size:500" json:"customer_avatar"`
	Rating         int     `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment        string  `gorm:"size:2000" json:"comment"`
	ServiceID      *uint   `json:"service_id"`
	StaffID        *uint   `json:"staff_id"`

	CreatedAt time.Time `json:"created_at"`
}
