package handlers

import (
	"fmt"
	"net/http"

	"user-account-center/app/server/constants"
	"user-account-center/app/server/models"

	"github.com/labstack/echo/v4"
)

// currentUser 取出认证中间件写入 context 的用户
func (a *App) currentUser(c echo.Context) *models.User {
	user, _ := c.Get(constants.ContextKeyUser).(*models.User)
	return user
}

// requireUser 校验请求方已通过认证并满足给定的授权谓词。
// 授权失败统一返回 403 ，不区分是哪一项判定不通过。
func (a *App) requireUser(c echo.Context, allowed func(*models.User) bool) (*models.User, error, int) {
	user := a.currentUser(c)
	if user == nil {
		return nil, fmt.Errorf("missing authenticated user"), http.StatusUnauthorized
	}

	if allowed != nil && !allowed(user) {
		return nil, fmt.Errorf("insufficient permissions"), http.StatusForbidden
	}

	return user, nil, http.StatusOK
}
