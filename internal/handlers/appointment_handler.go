package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	domain "github.com/BruksfildServices01/barbercraft/internal/domain/appointment"
	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/httpresp"
	"github.com/BruksfildServices01/barbercraft/internal/middleware"
	appointmentuc "github.com/BruksfildServices01/barbercraft/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *appointmentuc.CreateAppointment
	update       *appointmentuc.UpdateAppointment
	remove       *appointmentuc.DeleteAppointment
	get          *appointmentuc.GetAppointment
	list         *appointmentuc.ListAppointments
	availability *appointmentuc.GetAvailability
	log          *zap.Logger
}

func NewAppointmentHandler(repo domain.Repository, dispatcher *audit.Dispatcher, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		create:       appointmentuc.NewCreateAppointment(repo, dispatcher),
		update:       appointmentuc.NewUpdateAppointment(repo, dispatcher),
		remove:       appointmentuc.NewDeleteAppointment(repo, dispatcher),
		get:          appointmentuc.NewGetAppointment(repo),
		list:         appointmentuc.NewListAppointments(repo),
		availability: appointmentuc.NewGetAvailability(repo),
		log:          log,
	}
}

// ======================================================
// READ
// ======================================================

// List shows the caller's own appointments, or all of them for admins.
func (h *AppointmentHandler) List(c *gin.Context) {
	views, err := h.list.Execute(c.Request.Context(), middleware.Scope(c))
	if err != nil {
		httperr.Respond(c, h.log, err, "Failed to fetch appointments")
		return
	}

	httpresp.List(c, views)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, domain.ErrNotFound.Error())
	if !ok {
		return
	}

	view, err := h.get.Execute(c.Request.Context(), id, middleware.Scope(c))
	if err != nil {
		httperr.Respond(c, h.log, err, "Failed to fetch appointment")
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// WRITE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.create.Execute(c.Request.Context(), appointmentuc.CreateAppointmentInput{
		UserID:    middleware.UserID(c),
		ServiceID: uint(req.ServiceID),
		StaffID:   req.StaffID.Ptr(),
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, h.log, err, "Failed to create appointment")
		return
	}

	httpresp.Created(c, view)
}

// Update applies only the keys present in the body; "staff_id": null
// unassigns the staff member.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, domain.ErrNotFoundOrScope.Error())
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	in := appointmentuc.UpdateAppointmentInput{
		ID:       id,
		Scope:    middleware.Scope(c),
		StaffSet: req.StaffID.Set,
		Date:     req.Date,
		Time:     req.Time,
		Notes:    req.Notes,
		Status:   req.Status,
	}
	if req.ServiceID != nil {
		in.ServiceID = uintPtr(uint(*req.ServiceID))
	}
	if req.StaffID.Set {
		in.StaffID = req.StaffID.ID
	}

	view, err := h.update.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, h.log, err, "Failed to update appointment")
		return
	}

	httpresp.OK(c, view)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, domain.ErrNotFoundOrScope.Error())
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, middleware.Scope(c)); err != nil {
		httperr.Respond(c, h.log, err, "Failed to delete appointment")
		return
	}

	httpresp.Message(c, "Appointment deleted successfully")
}

// ======================================================
// AVAILABILITY
// ======================================================

// Availability answers the free half-hour slots of a day. serviceId and
// barberId accept the "barber_N" form the public listing hands out.
func (h *AppointmentHandler) Availability(c *gin.Context) {
	in := domain.AvailabilityInput{Date: c.Query("date")}

	if s := c.Query("serviceId"); s != "" {
		id, err := dto.ParseID(s)
		if err != nil {
			httperr.NotFound(c, "Service not found")
			return
		}
		in.ServiceID = id
	}
	if s := c.Query("barberId"); s != "" {
		id, err := dto.ParseID(s)
		if err != nil {
			httperr.BadRequest(c, "Invalid barberId")
			return
		}
		in.StaffID = &id
	}

	slots, err := h.availability.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, h.log, err, "Failed to check availability")
		return
	}

	httpresp.List(c, slots)
}
