package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/triptrack/services/location"
	httpHandler "github.com/piresc/triptrack/services/location/handler/http"
)

// Handler wires the location HTTP handlers to their routes
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
}

// NewHandler creates a new location route handler
func NewHandler(locationUC location.LocationUC) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
	}
}

// RegisterRoutes registers the location routes under the trip they belong to
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/trips")

	api.POST("/:tripId/location", h.locationHTTP.UpdateLocation)
	api.GET("/:tripId/location", h.locationHTTP.GetLocation)
}
