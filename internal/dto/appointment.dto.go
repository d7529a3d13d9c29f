package dto

import "github.com/BruksfildServices01/barbercraft/internal/models"

// AppointmentView is an appointment joined with its service, staff and user.
type AppointmentView struct {
	models.Appointment

	ServiceName     *string  `json:"service_name"`
	ServicePrice    *float64 `json:"service_price"`
	ServiceDuration *int     `json:"service_duration"`
	StaffName       *string  `json:"staff_name"`
	Username        *string  `json:"username"`
	UserName        *string  `json:"user_name"`
}

type CreateAppointmentRequest struct {
	ServiceID FlexID  `json:"service_id"`
	StaffID   *FlexID `json:"staff_id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Notes     string  `json:"notes"`
}

// UpdateAppointmentRequest carries only the keys present in the body.
type UpdateAppointmentRequest struct {
	ServiceID *FlexID    `json:"service_id"`
	StaffID   OptionalID `json:"staff_id"`
	Date      *string    `json:"date"`
	Time      *string    `json:"time"`
	Notes     *string    `json:"notes"`
	Status    *string    `json:"status"`
}
