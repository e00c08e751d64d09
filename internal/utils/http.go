package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessBody is the acknowledgement returned by state-changing endpoints
type SuccessBody struct {
	Success bool `json:"success"`
}

// ErrorBody is the body of every failed request
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessResponse sends 200 {"success":true}
func SuccessResponse(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessBody{Success: true})
}

// DataResponse sends data as the whole body
func DataResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// ErrorResponseHandler sends {"error": message} with the given status
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorBody{Error: errorMessage})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// ConflictResponse sends a 409 Conflict response
func ConflictResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusConflict, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}
