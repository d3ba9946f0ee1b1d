package handlers

import (
	"github.com/labstack/echo/v4"
)

// RegisterHandlers 绑定全部路由。
// userAuth 为认证中间件，需要登录的路由都挂在它后面。
func RegisterHandlers(e *echo.Echo, a *App, userAuth echo.MiddlewareFunc) {
	e.GET("/healthcheck", a.HealthCheck)

	// 认证相关，无需登录
	e.POST("/auth/register", a.AuthRegister)
	e.POST("/auth/login", a.AuthLogin)
	e.POST("/auth/forgot-password", a.AuthForgotPassword)
	e.POST("/auth/reset-password", a.AuthResetPassword)
	e.POST("/auth/request-verify-token", a.AuthRequestVerifyToken)
	e.POST("/auth/verify", a.AuthVerify)

	// 需要登录的路由
	authed := e.Group("", userAuth)
	authed.POST("/auth/logout", a.AuthLogout)

	authed.GET("/users/me", a.UserInfoGetSelf)
	authed.PATCH("/users/me", a.UserInfoUpdateSelf)
	authed.DELETE("/users/me", a.UserDeleteSelf)

	authed.GET("/admin/dashboard", a.AdminDashboard)
	authed.GET("/admin/users", a.AdminUserList)
	authed.GET("/admin/users/:id", a.AdminUserGet)
	authed.PATCH("/admin/users/:id", a.AdminUserUpdate)
	authed.DELETE("/admin/users/:id", a.AdminUserDelete)
}
