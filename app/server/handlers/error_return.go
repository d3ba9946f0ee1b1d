package handlers

import (
	"user-account-center/app/server/types"

	"github.com/labstack/echo/v4"
)

// er 统一的错误返回
func (a *App) er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, types.NewErrorMessage(statusCode))
}
