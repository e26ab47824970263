package handlers

import (
	"ClinicDesk/logger"
	"ClinicDesk/utils"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// InvalidBodyMessage is returned for any request body that cannot be decoded.
const InvalidBodyMessage = "Invalid request body"

var errEmptyBody = utils.NewValidationError("Request body is required")

// bindJSON decodes the request body into dest. A malformed body is a
// ValidationError with a fixed message; the decoder error is only logged.
func bindJSON(c *gin.Context, log *logger.Logger, dest interface{}) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		log.WithContext(c.Request.Context()).WithError(err).WithField("path", c.FullPath()).Warn("Rejected request body")
		return utils.NewValidationError(InvalidBodyMessage)
	}
	return nil
}

func isEmptyBody(err error) bool {
	return errors.Is(err, errEmptyBody)
}
