package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors pushed onto the gin context to one response.
// Underlying error text is only exposed in development builds; in
// production it is logged server-side and the client gets a generic body.
func ErrorHandler(devMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			var detail interface{}
			if devMode && appErr.Err != nil {
				detail = appErr.Err.Error()
			}
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed", "path", c.Request.URL.Path, "error", err)
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		logger.Log.Error("Unhandled error", "path", c.Request.URL.Path, "error", err)
		var detail interface{}
		if devMode {
			detail = err.Error()
		}
		response.Error(c, http.StatusInternalServerError, "Something went wrong!", detail)
	}
}
