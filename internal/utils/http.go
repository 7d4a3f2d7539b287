package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/logger"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// AppErrorResponse maps a usecase error to its HTTP status and sends it.
// Internal errors are reported with a generic message.
func AppErrorResponse(c echo.Context, err error) error {
	return ErrorResponseHandler(c, apperror.HTTPStatus(err), apperror.PublicMessage(err))
}

// HandleAppError logs a failed request and sends the mapped error response.
// Internal failures are logged at error level and noticed on the New Relic transaction.
func HandleAppError(c echo.Context, msg string, err error) error {
	ctx := c.Request().Context()
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		if txn := newrelic.FromContext(ctx); txn != nil {
			txn.NoticeError(err)
		}
		logger.ErrorCtx(ctx, msg, logger.Err(err), logger.String("path", c.Path()))
	} else {
		logger.WarnCtx(ctx, msg, logger.String("reason", kind.String()), logger.String("path", c.Path()))
	}
	return AppErrorResponse(c, err)
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// TooManyRequestsResponse sends a 429 Too Many Requests response
func TooManyRequestsResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Rate limit exceeded"
	}
	return ErrorResponseHandler(c, http.StatusTooManyRequests, errorMessage)
}
