package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/triptrack/services/trips"
	httpHandler "github.com/piresc/triptrack/services/trips/handler/http"
)

// Handler wires the trip HTTP handlers to their routes
type Handler struct {
	tripsHTTP *httpHandler.TripsHandler
}

// NewHandler creates a new trips route handler
func NewHandler(tripUC trips.TripUC) *Handler {
	return &Handler{
		tripsHTTP: httpHandler.NewTripsHandler(tripUC),
	}
}

// RegisterRoutes registers the trip lifecycle routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/trips")

	api.POST("", h.tripsHTTP.CreateTrip)
	api.GET("/:tripId", h.tripsHTTP.GetTrip)
	api.PATCH("/:tripId/start", h.tripsHTTP.StartTrip)
	api.PATCH("/:tripId/complete", h.tripsHTTP.CompleteTrip)
	api.PATCH("/:tripId/cancel", h.tripsHTTP.CancelTrip)
}
