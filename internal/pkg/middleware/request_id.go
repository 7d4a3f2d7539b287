package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/requestcontext"
)

// RequestID propagates X-Request-ID, generating one when the caller did not send it.
// The ID is also stored in the request context for usecase logging.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			req := c.Request()
			c.SetRequest(req.WithContext(requestcontext.WithRequestID(req.Context(), id)))
			AddAttribute(c, "request_id", id)
			return next(c)
		}
	}
}

// GinRequestID is the gin counterpart of RequestID
func GinRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(echo.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(echo.HeaderXRequestID, id)
		c.Request = c.Request.WithContext(requestcontext.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
