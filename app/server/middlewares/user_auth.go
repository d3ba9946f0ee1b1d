package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"user-account-center/app/server/authz"
	"user-account-center/app/server/constants"
	"user-account-center/app/server/directory"
	"user-account-center/app/server/jwt"
	"user-account-center/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserAuth 验证会话 token 并把解析出的用户写入 context 。
// token 优先从 cookie 提取，其次是 Authorization 头。
func UserAuth(j *jwt.JWT, dir directory.Directory, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 提取 token
			var tokenString string
			if cookie, err := c.Cookie(constants.AuthCookieName); err == nil {
				tokenString = cookie.Value
			}
			if tokenString == "" {
				authHeader := c.Request().Header.Get("Authorization")
				if authHeader != "" {
					splits := strings.Split(authHeader, " ")
					if len(splits) != 2 || !strings.EqualFold(splits[0], "bearer") {
						return er(c, http.StatusUnauthorized)
					}
					tokenString = splits[1]
				}
			}
			if tokenString == "" {
				return er(c, http.StatusUnauthorized)
			}

			// 验证 token ，过期与无效都视为未认证
			userID, err := j.Parse(tokenString, jwt.PurposeAuth)
			if err != nil {
				return er(c, http.StatusUnauthorized)
			}

			rctx := c.Request().Context()

			// 解析用户
			user, err := dir.FindByID(rctx, userID)
			if err != nil {
				if errors.Is(err, directory.ErrNotFound) {
					return er(c, http.StatusUnauthorized)
				}
				l.Error("failed to resolve user", zap.String("id", userID.String()), zap.Error(err))
				return er(c, http.StatusInternalServerError)
			}

			// 被停用或已注销的账号不放行
			if !authz.Active(user) || user.IsDeleted {
				return er(c, http.StatusUnauthorized)
			}

			// 设置 context
			c.Set(constants.ContextKeyUser, user)

			// 继续处理
			return next(c)
		}
	}
}

func er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, types.NewErrorMessage(statusCode))
}
