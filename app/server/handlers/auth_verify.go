package handlers

import (
	"errors"
	"net/http"

	"user-account-center/app/server/directory"
	"user-account-center/app/server/jwt"
	"user-account-center/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) AuthRequestVerifyToken(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.RequestVerifyTokenRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if !validEmail(req.Email) {
		return a.er(c, http.StatusBadRequest)
	}

	// 统一返回 202 ，不暴露账号存在性与验证状态
	user, err := a.dir.FindByEmail(rctx, req.Email)
	if err != nil {
		if !errors.Is(err, directory.ErrNotFound) {
			a.l.Error("failed to find user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
		return c.NoContent(http.StatusAccepted)
	}

	// 不可用或已验证的账号不再发验证 token
	if !user.IsActive || user.IsDeleted || user.IsVerified {
		return c.NoContent(http.StatusAccepted)
	}

	token, err := a.jwt.Sign(user.ID, jwt.PurposeVerify, a.cfg.Security.VerifyTokenLifetime)
	if err != nil {
		a.l.Error("failed to sign verify token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	a.notifier.OnVerifyRequest(rctx, user, token)

	return c.NoContent(http.StatusAccepted)
}

func (a *App) AuthVerify(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.VerifyRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 验证 token
	userID, err := a.jwt.Parse(req.Token, jwt.PurposeVerify)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	// 标记已验证
	verified := true
	user, err := a.dir.Update(rctx, userID, &directory.Patch{IsVerified: &verified})
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return a.er(c, http.StatusBadRequest)
		}
		a.l.Error("failed to update user", zap.String("id", userID.String()), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, types.NewUserInfo(user))
}
