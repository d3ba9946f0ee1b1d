package handlers

import (
	"errors"
	"net/http"

	"user-account-center/app/server/authn"
	"user-account-center/app/server/constants"
	"user-account-center/app/server/jwt"
	"user-account-center/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.LoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 没有写用户名或密码
	if req.Username == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest)
	}

	// 校验凭据。失败统一返回 401 ，不区分原因
	user, err := a.auth.Authenticate(rctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authn.ErrInvalidCredentials) {
			return a.er(c, http.StatusUnauthorized)
		}
		a.l.Error("failed to authenticate user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 签出 JWT
	token, err := a.jwt.Sign(user.ID, jwt.PurposeAuth, a.cfg.Security.TokenLifetime)
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 同时写入 cookie ，便于浏览器端自动携带
	c.SetCookie(&http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.cfg.Security.TokenLifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	// 返回
	return c.JSON(http.StatusOK, &types.LoginToken{
		Token: token,
	})
}

func (a *App) AuthLogout(c echo.Context) error {
	// token 本身无法撤销，只清理 cookie
	c.SetCookie(&http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.NoContent(http.StatusNoContent)
}
