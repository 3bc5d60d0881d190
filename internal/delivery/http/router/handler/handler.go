// Package handler contains the echo handlers of the console screens.
package handler

import (
	"net/http"
	"strconv"

	"backoffice/internal/delivery/http/response"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// idParam parses a positive numeric path parameter.
func idParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	return id, nil
}

// formStatus is the status a screen answers when redisplaying a rejected form.
func formStatus(err error) int {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() < http.StatusInternalServerError {
		if appErr.HTTPCode() == http.StatusBadRequest {
			return http.StatusUnprocessableEntity
		}

		return appErr.HTTPCode()
	}

	return http.StatusBadGateway
}

func bindError(err error) error {
	return errors.Join(domainerrors.ErrValidationFailed.WithDetails("the submitted form could not be read"), err)
}
