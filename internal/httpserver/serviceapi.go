package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cipherstack/cipher-auth/internal/repo"
	"github.com/cipherstack/cipher-auth/internal/service"
)

// ServiceHTTP is the service-to-service surface, gated by API keys instead
// of bearer tokens.
type ServiceHTTP struct {
	Authz *service.AuthzService
	Repo  repo.GormRepo
}

// VerifyToken lets a downstream service check a bearer token it received.
func (h *ServiceHTTP) VerifyToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Token string `json:"token"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	userID, err := h.Authz.Authenticate(ctx, req.Token)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"userId": userID})
}

func (h *ServiceHTTP) GetUser(c echo.Context) error {
	user, err := h.Repo.UserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if repo.NotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}
