package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/httpresp"
	"github.com/BruksfildServices01/barbercraft/internal/models"
)

const msgBarberNotFound = "Barber not found"

type StaffHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewStaffHandler(db *gorm.DB, log *zap.Logger) *StaffHandler {
	return &StaffHandler{db: db, log: log}
}

func (h *StaffHandler) find(c *gin.Context, fallback string) ([]models.Staff, bool) {
	var staff []models.Staff
	if err := h.db.WithContext(c.Request.Context()).
		Order("featured DESC, name ASC").
		Find(&staff).Error; err != nil {
		httperr.Respond(c, h.log, err, fallback)
		return nil, false
	}
	return staff, true
}

// List answers the staff rows with their JSON columns always present.
func (h *StaffHandler) List(c *gin.Context) {
	staff, ok := h.find(c, "Failed to fetch staff")
	if !ok {
		return
	}
	for i := range staff {
		if staff[i].Specialties == nil {
			staff[i].Specialties = []string{}
		}
		if staff[i].WorkingHours == nil {
			staff[i].WorkingHours = map[string]*models.DayHours{}
		}
	}
	httpresp.List(c, staff)
}

// ListBarbers answers the same rows in the public barber shape.
func (h *StaffHandler) ListBarbers(c *gin.Context) {
	staff, ok := h.find(c, "Failed to fetch barbers")
	if !ok {
		return
	}
	httpresp.List(c, dto.BarbersFrom(staff))
}

// GetBarber accepts both "3" and "barber_3".
func (h *StaffHandler) GetBarber(c *gin.Context) {
	id, ok := pathID(c, msgBarberNotFound)
	if !ok {
		return
	}

	var staff models.Staff
	if err := h.db.WithContext(c.Request.Context()).First(&staff, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgBarberNotFound)
			return
		}
		httperr.Respond(c, h.log, err, "Failed to fetch barber")
		return
	}

	httpresp.OK(c, dto.BarberFrom(staff))
}
