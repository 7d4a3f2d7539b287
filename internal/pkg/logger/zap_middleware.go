package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware logs every request handled by an Echo router
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := req.URL.Path
			if raw := req.URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// let echo's error handler write the response so the status is final
				c.Error(err)
			}

			latency := time.Since(start)
			txn := newrelic.FromContext(req.Context())
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			userID := subjectOf(c.Get("user_id"))

			if txn != nil {
				txn.AddAttribute("user_id", userID)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, req.Method, path, c.RealIP(), userID, requestID, c.Response().Status, latency, err)
			return nil
		}
	}
}

// ZapGinMiddleware logs every request handled by a Gin router
func ZapGinMiddleware(logger *ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		var err error
		if len(c.Errors) > 0 {
			err = c.Errors.Last()
		}
		userID, _ := c.Get("user_id")

		logger.LogHTTPRequest(
			newrelic.FromContext(c.Request.Context()),
			c.Request.Method, path, c.ClientIP(), subjectOf(userID),
			c.Writer.Header().Get("X-Request-ID"), c.Writer.Status(), time.Since(start), err,
		)
	}
}

func subjectOf(v interface{}) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return "anonymous"
}
