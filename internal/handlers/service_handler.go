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

const (
	msgServiceNotFound     = "Service not found"
	msgServiceRequired     = "Name, price, and duration are required"
	msgServiceNotPositive  = "Price and duration must be positive numbers"
	defaultServiceCategory = "Haircut"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher, log *zap.Logger) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit, log: log}
}

// --------- Helpers ---------

func validateService(req dto.ServiceRequest) error {
	if req.Name == "" || req.Price == nil || req.Duration == nil || *req.Price == 0 || *req.Duration == 0 {
		return httperr.Validation(msgServiceRequired)
	}
	if *req.Price < 0 || *req.Duration < 0 {
		return httperr.Validation(msgServiceNotPositive)
	}
	return nil
}

func applyService(s *models.Service, req dto.ServiceRequest) {
	s.Name = req.Name
	s.Description = req.Description
	s.Price = *req.Price
	s.Duration = *req.Duration
	s.Category = req.Category
	if s.Category == "" {
		s.Category = defaultServiceCategory
	}
	s.Image = req.Image
	s.Featured = req.Featured
}

func (h *ServiceHandler) record(c *gin.Context, action string, id uint, meta any) {
	h.audit.Dispatch(audit.Event{
		UserID:   uintPtr(middleware.UserID(c)),
		Action:   action,
		Entity:   "service",
		EntityID: uintPtr(id),
		Metadata: meta,
	})
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Order("featured DESC, name ASC").
		Find(&services).Error; err != nil {
		httperr.Respond(c, h.log, err, "Failed to fetch services")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, msgServiceNotFound)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.WithContext(c.Request.Context()).First(&service, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgServiceNotFound)
			return
		}
		httperr.Respond(c, h.log, err, "Failed to fetch service")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validateService(req); err != nil {
		httperr.Respond(c, h.log, err, "Failed to create service")
		return
	}

	var service models.Service
	applyService(&service, req)

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		httperr.Respond(c, h.log, err, "Failed to create service")
		return
	}

	h.record(c, audit.ActionServiceCreated, service.ID, map[string]any{"name": service.Name})
	httpresp.Created(c, service)
}

// Update replaces the editable fields, validated as on create.
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, msgServiceNotFound)
	if !ok {
		return
	}

	var req dto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	var service models.Service
	if err := h.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgServiceNotFound)
			return
		}
		httperr.Respond(c, h.log, err, "Failed to update service")
		return
	}

	if err := validateService(req); err != nil {
		httperr.Respond(c, h.log, err, "Failed to update service")
		return
	}
	applyService(&service, req)

	if err := h.db.WithContext(ctx).Save(&service).Error; err != nil {
		httperr.Respond(c, h.log, err, "Failed to update service")
		return
	}

	h.record(c, audit.ActionServiceUpdated, service.ID, nil)
	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, msgServiceNotFound)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Respond(c, h.log, res.Error, "Failed to delete service")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, msgServiceNotFound)
		return
	}

	h.record(c, audit.ActionServiceDeleted, id, nil)
	httpresp.Message(c, "Service deleted successfully")
}
