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
	"github.com/piresc/triptrack/services/location"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// UpdateLocation handles POST /api/trips/:tripId/location
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	tripID := c.Param("tripId")

	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to bind location update", logger.TripID(tripID), logger.Err(err))
		return utils.BadRequestResponse(c, constants.MsgInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.locationUC.UpdateLocation(c.Request().Context(), tripID, req); err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c)
}

// GetLocation handles GET /api/trips/:tripId/location
func (h *LocationHandler) GetLocation(c echo.Context) error {
	tripID := c.Param("tripId")

	snapshot, err := h.locationUC.GetLocation(c.Request().Context(), tripID)
	if err != nil {
		if errors.Is(err, models.ErrLocationNotFound) {
			return utils.NotFoundResponse(c, constants.MsgLocationNotFound)
		}
		logger.ErrorCtx(c.Request().Context(), "Failed to get location", logger.TripID(tripID), logger.Err(err))
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.DataResponse(c, http.StatusOK, snapshot)
}
