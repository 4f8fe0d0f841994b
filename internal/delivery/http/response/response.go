// Package response writes sandbox responses in the backend's wire format:
// resources are sent as bare JSON and failures as {"statusCode","message","error"}.
package response

import (
	"net/http"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// JSON writes data as the bare response body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 response.
func OK(c echo.Context, data any) error {
	return JSON(c, http.StatusOK, data)
}

// Created writes a 201 response.
func Created(c echo.Context, data any) error {
	return JSON(c, http.StatusCreated, data)
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes an error body. Several messages are sent as an array, one as a string.
func Error(c echo.Context, statusCode int, messages ...string) error {
	return c.JSON(statusCode, domainerrors.NewErrorBody(statusCode, http.StatusText(statusCode), messages...))
}

// BadRequest 400 error
func BadRequest(c echo.Context, messages ...string) error {
	return Error(c, http.StatusBadRequest, messages...)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}
