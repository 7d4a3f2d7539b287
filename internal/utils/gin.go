package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/piresc/wellnest/internal/pkg/apperror"
)

// GinSuccess sends the success envelope from a gin handler
func GinSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// GinError aborts the gin chain with the error envelope
func GinError(c *gin.Context, statusCode int, errorMessage string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// GinAppError maps a usecase error to its HTTP status and aborts the chain
func GinAppError(c *gin.Context, err error) {
	_ = c.Error(err)
	GinError(c, apperror.HTTPStatus(err), apperror.PublicMessage(err))
}
