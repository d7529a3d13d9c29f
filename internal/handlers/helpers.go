package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
)

const msgInvalidBody = "Invalid request body"

// pathID reads :id. A malformed id can never match a row, so it answers
// the same 404 a missing one would.
func pathID(c *gin.Context, notFound string) (uint, bool) {
	id, err := dto.ParseID(c.Param("id"))
	if err != nil || id == 0 {
		httperr.NotFound(c, notFound)
		return 0, false
	}
	return id, true
}

// bindJSON treats an empty body as {} so field validation reports what is
// missing.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.Write(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		httperr.BadRequest(c, msgInvalidBody)
		return false
	}
	return true
}

func uintPtr(v uint) *uint {
	return &v
}
