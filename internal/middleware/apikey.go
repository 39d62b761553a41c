package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/cipherstack/cipher-auth/internal/service"
)

const apiKeyHeader = "X-API-Key"

// APIKeys gates the service-to-service routes on stored API keys.
type APIKeys struct {
	Keys *service.APIKeyService
}

func NewAPIKeys(keys *service.APIKeyService) *APIKeys {
	return &APIKeys{Keys: keys}
}

func (m *APIKeys) RequirePublicKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Header.Get(apiKeyHeader)
		if err := m.Keys.ValidatePublic(c.Request().Context(), key); err != nil {
			return toHTTPError(err)
		}
		return next(c)
	}
}

func (m *APIKeys) RequirePrivateKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secret := c.Request().Header.Get(apiKeyHeader)
		if err := m.Keys.ValidatePrivate(c.Request().Context(), secret); err != nil {
			return toHTTPError(err)
		}
		return next(c)
	}
}
