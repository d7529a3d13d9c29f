package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbercraft/internal/domain/user"
	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/httpresp"
)

type CustomerHandler struct {
	users user.Repository
	log   *zap.Logger
}

func NewCustomerHandler(users user.Repository, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{users: users, log: log}
}

// List answers USER accounts, newest first, without credentials.
func (h *CustomerHandler) List(c *gin.Context) {
	users, err := h.users.ListCustomers(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err, "Failed to fetch customers")
		return
	}

	out := make([]dto.Customer, 0, len(users))
	for _, u := range users {
		out = append(out, dto.Customer{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Name:      u.Name,
			CreatedAt: u.CreatedAt,
		})
	}

	httpresp.List(c, out)
}
