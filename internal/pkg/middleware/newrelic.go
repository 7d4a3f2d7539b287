package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// AddAttribute tags the request's New Relic transaction, if any
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeError records err on the request's New Relic transaction, if any
func NoticeError(c echo.Context, err error) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(err)
	}
}

// GinAddAttribute is AddAttribute for routes instrumented by nrgin
func GinAddAttribute(c *gin.Context, key string, value interface{}) {
	if txn := nrgin.Transaction(c); txn != nil {
		txn.AddAttribute(key, value)
	}
}
