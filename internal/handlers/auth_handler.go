package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/httpresp"
	authuc "github.com/BruksfildServices01/barbercraft/internal/usecase/auth"
)

type AuthHandler struct {
	svc *authuc.Service
	log *zap.Logger
}

func NewAuthHandler(svc *authuc.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, h.log, err, "Registration failed")
		return
	}

	httpresp.Created(c, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, h.log, err, "Login failed")
		return
	}

	httpresp.OK(c, res)
}
