package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cipherstack/cipher-auth/internal/middleware"
)

type Deps struct {
	Auth        *AuthHTTP
	Users       *UserHTTP
	Roles       *RoleHTTP
	Permissions *PermissionHTTP
	APIKeys     *APIKeyHTTP
	Service     *ServiceHTTP

	AuthMW *middleware.Auth
	KeyMW  *middleware.APIKeys
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "OK", "service": "Cipher Auth"})
	})

	auth := e.Group("/auth")
	auth.POST("/signup", d.Auth.Signup)
	auth.POST("/signin", d.Auth.Signin)
	auth.POST("/refresh", d.Auth.Refresh)
	auth.POST("/forgot-password", d.Auth.ForgotPassword)
	auth.POST("/reset-password", d.Auth.ResetPassword)
	auth.POST("/logout", d.Auth.Logout, d.AuthMW.RequireAuth)

	users := e.Group("/users", d.AuthMW.RequireAuth)
	users.POST("/me", d.Users.Me)

	admin := e.Group("/admin", d.AuthMW.RequireAdmin)

	roles := admin.Group("/roles")
	roles.POST("", d.Roles.Create)
	roles.GET("", d.Roles.List)
	roles.GET("/:id", d.Roles.Get)
	roles.PUT("/:id", d.Roles.Update)
	roles.DELETE("/:id", d.Roles.Delete)
	roles.POST("/:id/assign", d.Roles.Assign)

	permissions := admin.Group("/permissions")
	permissions.POST("", d.Permissions.Create)
	permissions.DELETE("/:id", d.Permissions.Delete)

	apiKeys := admin.Group("/api-keys")
	apiKeys.POST("", d.APIKeys.Create)
	apiKeys.GET("", d.APIKeys.List)

	svc := e.Group("/service")
	svc.POST("/verify-token", d.Service.VerifyToken, d.KeyMW.RequirePublicKey)
	svc.GET("/users/:id", d.Service.GetUser, d.KeyMW.RequirePrivateKey)
}
