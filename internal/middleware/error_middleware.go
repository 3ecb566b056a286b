package middleware

import (
	"net/http"

	"techhive-users/internal/transport/httpdto"
	"techhive-users/pkg/logger"

	"github.com/gin-gonic/gin"
)

const msgInternalError = "Internal server error."

// ErrorBoundary is the outermost stage. Panics from any later stage, and errors
// attached with c.Error that left no response behind, become one generic 500.
// The cause is logged, never returned.
func ErrorBoundary(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			if log := pick(l); log != nil {
				log.ErrorCtx(c.Request.Context(), "panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, rec)
			}
			writeInternalError(c)
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if log := pick(l); log != nil {
			log.ErrorCtx(c.Request.Context(), "request error: %s", err.Error())
		}
		if c.Writer.Written() {
			return
		}
		writeInternalError(c)
	}
}

func writeInternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, httpdto.NewErrorResponse(msgInternalError))
}

func pick(l *logger.Logger) *logger.Logger {
	if l != nil {
		return l
	}
	return logger.GetGlobalLogger()
}
