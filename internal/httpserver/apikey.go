package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cipherstack/cipher-auth/internal/service"
)

type APIKeyHTTP struct {
	Keys *service.APIKeyService
}

// Create mints a key pair for the calling admin. The secret is returned
// exactly once, here.
func (h *APIKeyHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	userID, _ := c.Get("userID").(string)
	key, err := h.Keys.Create(ctx, userID, req.Name)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"apiKey":    key.Key,
		"apiSecret": key.Secret,
	})
}

func (h *APIKeyHTTP) List(c echo.Context) error {
	userID, _ := c.Get("userID").(string)
	keys, err := h.Keys.List(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"apiKeys": keys})
}
