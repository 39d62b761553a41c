package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cipherstack/cipher-auth/internal/service"
)

type PermissionHTTP struct {
	Permissions *service.PermissionService
}

func (h *PermissionHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	permission, err := h.Permissions.Create(ctx, req.Name, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": permission.ID})
}

func (h *PermissionHTTP) Delete(c echo.Context) error {
	if err := h.Permissions.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
