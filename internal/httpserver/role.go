package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cipherstack/cipher-auth/internal/service"
)

type RoleHTTP struct {
	Roles *service.RoleService
}

func (h *RoleHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Identifier  string `json:"identifier"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	role, err := h.Roles.Create(ctx, req.Identifier, req.Name, req.Description)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"id": role.ID})
}

func (h *RoleHTTP) List(c echo.Context) error {
	roles, err := h.Roles.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, roles)
}

func (h *RoleHTTP) Get(c echo.Context) error {
	detail, err := h.Roles.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *RoleHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	role, err := h.Roles.Update(ctx, c.Param("id"), req.Name, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": role.ID})
}

func (h *RoleHTTP) Delete(c echo.Context) error {
	if err := h.Roles.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Role deleted successfully"})
}

func (h *RoleHTTP) Assign(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		PermissionID string `json:"permissionId"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	msg, err := h.Roles.AssignPermission(ctx, c.Param("id"), req.PermissionID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": msg})
}
