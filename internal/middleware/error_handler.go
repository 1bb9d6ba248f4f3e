package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tattoohub/internal/pkg/httperr"
	"tattoohub/internal/pkg/response"
)

// ErrorHandler recovers panics and renders errors that handlers pushed with c.Error.
func ErrorHandler(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("panic: %v", recovered)
				requestLog(log, c, start, http.StatusInternalServerError).
					WithField("stack", string(debug.Stack())).
					WithError(err).Error("request panicked")
				if !c.Writer.Written() {
					response.Write(c, response.Internal(err))
				}
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, msg := httperr.StatusFor(err)
		entry := requestLog(log, c, start, status).WithError(err)
		if status >= http.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Warn("request rejected")
		}

		if c.Writer.Written() {
			return
		}
		payload := response.MessagePayload{Msg: msg}
		if status >= http.StatusInternalServerError {
			payload.Error = err.Error()
		}
		response.Write(c, response.New(status, payload))
	}
}

func requestLog(log logrus.FieldLogger, c *gin.Context, start time.Time, status int) logrus.FieldLogger {
	return log.WithFields(logrus.Fields{
		"status":     status,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"client_ip":  c.ClientIP(),
		"user_id":    UserID(c),
		"request_id": c.GetString(RequestIDKey),
		"latency":    time.Since(start).String(),
	})
}
