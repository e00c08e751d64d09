package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/triptrack/internal/pkg/constants"
	"github.com/piresc/triptrack/internal/pkg/logger"
	"github.com/piresc/triptrack/internal/pkg/models"
	nrpkg "github.com/piresc/triptrack/internal/pkg/newrelic"
	"github.com/piresc/triptrack/internal/utils"
	"github.com/piresc/triptrack/services/trips"
)

// TripsHandler handles HTTP requests for the trip lifecycle
type TripsHandler struct {
	tripUC trips.TripUC
}

// NewTripsHandler creates a new trips HTTP handler
func NewTripsHandler(tripUC trips.TripUC) *TripsHandler {
	return &TripsHandler{
		tripUC: tripUC,
	}
}

// CreateTrip handles POST /api/trips
func (h *TripsHandler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to bind create trip request", logger.Err(err))
		return utils.BadRequestResponse(c, constants.MsgInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	tripID, err := h.tripUC.CreateTrip(c.Request().Context(), req)
	if err != nil {
		return h.writeError(c, err)
	}

	nrpkg.AddTransactionAttribute(nrpkg.FromEchoContext(c), "trip_id", tripID)
	return utils.DataResponse(c, http.StatusOK, models.CreateTripResponse{TripID: tripID})
}

// GetTrip handles GET /api/trips/:tripId
func (h *TripsHandler) GetTrip(c echo.Context) error {
	tripID := c.Param("tripId")

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		return h.writeError(c, err)
	}

	return utils.DataResponse(c, http.StatusOK, trip)
}

// StartTrip handles PATCH /api/trips/:tripId/start
func (h *TripsHandler) StartTrip(c echo.Context) error {
	if err := h.tripUC.StartTrip(c.Request().Context(), c.Param("tripId")); err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c)
}

// CompleteTrip handles PATCH /api/trips/:tripId/complete
func (h *TripsHandler) CompleteTrip(c echo.Context) error {
	if err := h.tripUC.CompleteTrip(c.Request().Context(), c.Param("tripId")); err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c)
}

// CancelTrip handles PATCH /api/trips/:tripId/cancel.
// The body and its reason are optional.
func (h *TripsHandler) CancelTrip(c echo.Context) error {
	var req models.CancelTripRequest
	if err := c.Bind(&req); err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to bind cancel trip request", logger.Err(err))
		return utils.BadRequestResponse(c, constants.MsgInvalidBody)
	}

	if err := h.tripUC.CancelTrip(c.Request().Context(), c.Param("tripId"), req.Reason); err != nil {
		return h.writeError(c, err)
	}
	return utils.SuccessResponse(c)
}

func (h *TripsHandler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrTripNotFound):
		return utils.NotFoundResponse(c, constants.MsgTripNotFound)
	case errors.Is(err, models.ErrInvalidTransition):
		return utils.ConflictResponse(c, err.Error())
	default:
		logger.ErrorCtx(c.Request().Context(), "Trip request failed",
			logger.TripID(c.Param("tripId")),
			logger.String("path", c.Path()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
