package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cipherstack/cipher-auth/internal/repo"
)

type UserHTTP struct {
	Repo repo.GormRepo
}

func (h *UserHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, _ := c.Get("userID").(string)
	user, err := h.Repo.UserByID(ctx, userID)
	if err != nil {
		if repo.NotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"userId": user.ID,
		"email":  user.Email,
	})
}
