package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/aquarium-service/pkg/aqua"
)

const errInternalMessage = "internal server error"

func statusFor(err error) int {
	switch {
	case errors.Is(err, aqua.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, aqua.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, aqua.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, aqua.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes exactly one error body. Unclassified errors are logged and hidden.
func (rs *RestfulServer) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		rs.logger().Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(status, gin.H{"error": errInternalMessage})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// idParam parses :id. Anything that is not a positive integer cannot name a record.
func idParam(c *gin.Context, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
		return 0, false
	}
	return uint(id), true
}
