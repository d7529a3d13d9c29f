package dto

import "github.com/BruksfildServices01/barbercraft/internal/models"

type ReviewView struct {
	models.Review

	Username    *string `json:"username"`
	UserName    *string `json:"user_name"`
	ServiceName *string `json:"service_name"`
	StaffName   *string `json:"staff_name"`
}

type CreateReviewRequest struct {
	Rating    int     `json:"rating"`
	Comment   string  `json:"comment"`
	ServiceID *FlexID `json:"service_id"`
	StaffID   *FlexID `json:"staff_id"`
}
