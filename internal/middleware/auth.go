package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cipherstack/cipher-auth/internal/service"
)

// BearerToken extracts the credential from an Authorization header, or
// returns "" when the header is missing or malformed.
func BearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

type Auth struct {
	Authz *service.AuthzService
}

func NewAuth(authz *service.AuthzService) *Auth {
	return &Auth{Authz: authz}
}

// RequireAuth verifies the bearer credential and threads the resolved user
// id through the echo context.
func (m *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		userID, err := m.Authz.Authenticate(c.Request().Context(), token)
		if err != nil {
			return toHTTPError(err)
		}
		c.Set("userID", userID)
		c.Set("accessToken", token)
		return next(c)
	}
}

// RequireAdmin additionally demands the super-admin role.
func (m *Auth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		userID, err := m.Authz.AuthorizeAdmin(c.Request().Context(), token)
		if err != nil {
			return toHTTPError(err)
		}
		c.Set("userID", userID)
		c.Set("accessToken", token)
		return next(c)
	}
}

func toHTTPError(err error) error {
	var (
		authnErr *service.AuthenticationError
		authzErr *service.AuthorizationError
		keyErr   *service.APIKeyError
	)
	switch {
	case errors.As(err, &authnErr):
		return echo.NewHTTPError(http.StatusUnauthorized, authnErr.Reason)
	case errors.As(err, &authzErr):
		return echo.NewHTTPError(http.StatusForbidden, authzErr.Reason)
	case errors.As(err, &keyErr):
		return echo.NewHTTPError(http.StatusUnauthorized, keyErr.Reason)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
