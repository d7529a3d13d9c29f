package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/httpresp"
	"github.com/BruksfildServices01/barbercraft/internal/middleware"
	authuc "github.com/BruksfildServices01/barbercraft/internal/usecase/auth"
)

type MeHandler struct {
	svc *authuc.Service
	log *zap.Logger
}

func NewMeHandler(svc *authuc.Service, log *zap.Logger) *MeHandler {
	return &MeHandler{svc: svc, log: log}
}

// GetMe reads the account fresh from the database; the token only
// identifies it.
func (h *MeHandler) GetMe(c *gin.Context) {
	me, err := h.svc.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.log, err, "Failed to fetch user")
		return
	}

	httpresp.OK(c, me)
}
