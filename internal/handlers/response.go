package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenlaw/intake-backend/internal/apierr"
)

// respondError maps a service error to a response. apierr carries its own
// status and code; anything else is a plain bad request so internals never
// leak as page-level failures.
func respondError(c *gin.Context, err error) {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": ae.Error(), "code": ae.Code})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
