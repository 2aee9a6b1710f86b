package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"promo-bonus-service/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const panicStackLines = 16

// ErrorHandler renders errors that a handler recorded with c.Error but did not
// answer itself. Public errors carry their response; anything else is a 500
// whose cause stays in the log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				resp.Write(c)
				return
			}
		}

		slog.Error("unhandled request error",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"errors", c.Errors.String())
		httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil).Write(c)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := strings.Split(string(debug.Stack()), "\n")
				slog.Error("recovered from panic",
					"error", rec,
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
					"stack", stack[:min(len(stack), panicStackLines)])

				httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil).Write(c)
			}
		}()
		c.Next()
	}
}
