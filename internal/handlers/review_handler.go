package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/httpresp"
	"github.com/BruksfildServices01/barbercraft/internal/middleware"
	"github.com/BruksfildServices01/barbercraft/internal/models"
)

const msgRatingRange = "Rating must be between 1 and 5"

type ReviewHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewReviewHandler(db *gorm.DB, audit *audit.Dispatcher, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{db: db, audit: audit, log: log}
}

// views selects reviews with their author, service and staff names.
func (h *ReviewHandler) views(c *gin.Context) *gorm.DB {
	return h.db.WithContext(c.Request.Context()).
		Table("reviews AS r").
		Select(`r.*,
			u.username AS username, u.name AS user_name,
			s.name AS service_name, st.name AS staff_name`).
		Joins("LEFT JOIN users u ON r.user_id = u.id").
		Joins("LEFT JOIN services s ON r.service_id = s.id").
		Joins("LEFT JOIN staff st ON r.staff_id = st.id")
}

func (h *ReviewHandler) List(c *gin.Context) {
	var reviews []dto.ReviewView
	if err := h.views(c).
		Order("r.created_at DESC, r.id DESC").
		Scan(&reviews).Error; err != nil {
		httperr.Respond(c, h.log, err, "Failed to fetch reviews")
		return
	}

	httpresp.List(c, reviews)
}

// Create stores the author's display name on the review so it survives
// later edits to the account.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		httperr.BadRequest(c, msgRatingRange)
		return
	}

	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	var user models.User
	if err := h.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.BadRequest(c, "Invalid user")
			return
		}
		httperr.Respond(c, h.log, err, "Failed to create review")
		return
	}

	review := models.Review{
		UserID:       user.ID,
		CustomerName: user.DisplayName(),
		Rating:       req.Rating,
		Comment:      req.Comment,
		ServiceID:    req.ServiceID.Ptr(),
		StaffID:      req.StaffID.Ptr(),
	}
	if err := h.db.WithContext(ctx).Create(&review).Error; err != nil {
		httperr.Respond(c, h.log, err, "Failed to create review")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   audit.ActionReviewCreated,
		Entity:   "review",
		EntityID: &review.ID,
		Metadata: map[string]any{"rating": review.Rating},
	})

	var view dto.ReviewView
	if err := h.views(c).Where("r.id = ?", review.ID).Scan(&view).Error; err != nil {
		httperr.Respond(c, h.log, err, "Failed to fetch created review")
		return
	}

	httpresp.Created(c, view)
}
