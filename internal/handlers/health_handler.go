package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbercraft/internal/httpresp"
)

// jsISOLayout renders UTC timestamps the way browsers print Date.toISOString.
const jsISOLayout = "2006-01-02T15:04:05.000Z07:00"

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func Health(c *gin.Context) {
	httpresp.OK(c, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(jsISOLayout),
	})
}
