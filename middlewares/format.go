package middlewares

import (
	"ClinicDesk/logger"
	"ClinicDesk/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// RespondError maps err onto the error taxonomy and writes
// {"success": false, "message": ...}. Server-side failures are logged with
// their cause and answered with a generic message.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	status, message := StatusFor(err)
	if status >= http.StatusInternalServerError {
		log.WithContext(c.Request.Context()).WithError(err).WithField("path", c.FullPath()).Error("Request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}

// StatusFor returns the HTTP status and client-facing message for err.
func StatusFor(err error) (int, string) {
	var validationErr *utils.ValidationError
	var notFoundErr *utils.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case utils.IsPersistenceError(err):
		return http.StatusInternalServerError, "Storage is unavailable, please retry"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
