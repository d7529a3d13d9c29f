package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/httpresp"
	"github.com/BruksfildServices01/barbercraft/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	log  *zap.Logger
}

func NewAuditLogsHandler(logs *audit.Logger, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Optional date range; "to" covers the whole day
	// --------------------------------------------------

	if s := c.Query("from"); s != "" {
		if from, err := time.Parse(validators.DateLayout, s); err == nil {
			f.From = &from
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err := time.Parse(validators.DateLayout, s); err == nil {
			end := to.Add(24 * time.Hour)
			f.To = &end
		}
	}

	res, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, h.log, err, "Failed to fetch audit logs")
		return
	}

	httpresp.OK(c, res)
}
