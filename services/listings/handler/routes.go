package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/services/listings/handler/http"
)

// Handler registers the listings service routes
type Handler struct {
	listingHandler *http.ListingHandler
	cache          echo.MiddlewareFunc
}

// NewHandler creates the listings route set. cache wraps every read.
func NewHandler(listingHandler *http.ListingHandler, cache echo.MiddlewareFunc) *Handler {
	return &Handler{
		listingHandler: listingHandler,
		cache:          cache,
	}
}

// RegisterRoutes mounts the public catalogue endpoints under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	listing := api.Group("/services/services-listing")
	if h.cache != nil {
		listing.Use(h.cache)
	}
	listing.GET("/fetch-services", h.listingHandler.FetchServices)
	listing.GET("/:id", h.listingHandler.GetService)
}
