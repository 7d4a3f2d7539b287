package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/utils"
	"github.com/piresc/wellnest/services/bookings"
	"github.com/piresc/wellnest/services/listings"
	"github.com/piresc/wellnest/services/reviews"
	"github.com/piresc/wellnest/services/users"
)

// Validator validates decoded request bodies
type Validator interface {
	Validate(i interface{}) error
}

// AdminHandler serves the admin dashboard API. It owns no state of its own
// and drives the same usecases as the public API.
type AdminHandler struct {
	listingsUC listings.ListingsUC
	usersUC    users.UsersUC
	bookingsUC bookings.BookingsUC
	reviewsUC  reviews.ReviewsUC
	validator  Validator
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	listingsUC listings.ListingsUC,
	usersUC users.UsersUC,
	bookingsUC bookings.BookingsUC,
	reviewsUC reviews.ReviewsUC,
	validator Validator,
) *AdminHandler {
	return &AdminHandler{
		listingsUC: listingsUC,
		usersUC:    usersUC,
		bookingsUC: bookingsUC,
		reviewsUC:  reviewsUC,
		validator:  validator,
	}
}

type pageQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
}

func (h *AdminHandler) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.GinAppError(c, apperror.Validation("invalid request payload"))
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		utils.GinAppError(c, err)
		return false
	}
	return true
}

func bindPage(c *gin.Context) (pageQuery, bool) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.GinAppError(c, apperror.Validation("invalid query parameters"))
		return q, false
	}
	return q, true
}

func paramID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.GinAppError(c, apperror.Validation("invalid "+what+" ID"))
		return uuid.Nil, false
	}
	return id, true
}
