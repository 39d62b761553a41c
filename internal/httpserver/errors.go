package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cipherstack/cipher-auth/internal/service"
)

// httpError maps the core error taxonomy to transport status codes.
// Anything untyped is an internal error; its detail never reaches the
// client.
func httpError(err error) error {
	var (
		authnErr      *service.AuthenticationError
		authzErr      *service.AuthorizationError
		notFoundErr   *service.NotFoundError
		keyErr        *service.APIKeyError
		conflictErr   *service.ConflictError
		validationErr *service.ValidationError
	)
	switch {
	case errors.As(err, &authnErr):
		return echo.NewHTTPError(http.StatusUnauthorized, authnErr.Reason)
	case errors.As(err, &authzErr):
		return echo.NewHTTPError(http.StatusForbidden, authzErr.Reason)
	case errors.As(err, &notFoundErr):
		return echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &keyErr):
		return echo.NewHTTPError(http.StatusUnauthorized, keyErr.Reason)
	case errors.As(err, &conflictErr):
		return echo.NewHTTPError(http.StatusConflict, conflictErr.Reason)
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Reason)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
