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

func (a *App) AuthForgotPassword(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if !validEmail(req.Email) {
		return a.er(c, http.StatusBadRequest)
	}

	// 无论账号是否存在都返回 202 ，不暴露账号存在性
	user, err := a.dir.FindByEmail(rctx, req.Email)
	if err != nil {
		if !errors.Is(err, directory.ErrNotFound) {
			a.l.Error("failed to find user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
		return c.NoContent(http.StatusAccepted)
	}

	// 不可用或已注销的账号不发重设 token ，响应保持一致
	if !user.IsActive || user.IsDeleted {
		return c.NoContent(http.StatusAccepted)
	}

	// 签出重设密码 token ，交由通知渠道送达
	token, err := a.jwt.Sign(user.ID, jwt.PurposeReset, a.cfg.Security.ResetTokenLifetime)
	if err != nil {
		a.l.Error("failed to sign reset token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	a.notifier.OnForgotPassword(rctx, user, token)

	return c.NoContent(http.StatusAccepted)
}

func (a *App) AuthResetPassword(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.Password == "" || req.Password != req.ConfirmPassword {
		return a.er(c, http.StatusBadRequest)
	}

	// 验证重设密码 token ，过期与无效一视同仁
	userID, err := a.jwt.Parse(req.Token, jwt.PurposeReset)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	// token 指向的账号必须仍然可用
	user, err := a.dir.FindByID(rctx, userID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return a.er(c, http.StatusBadRequest)
		}
		a.l.Error("failed to find user", zap.String("id", userID.String()), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if !user.IsActive || user.IsDeleted {
		return a.er(c, http.StatusBadRequest)
	}

	// 处理密码
	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 更新用户信息
	if _, err := a.dir.Update(rctx, userID, &directory.Patch{HashedPassword: &passwordHash}); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			// token 指向的账号已不存在，视为无效 token
			return a.er(c, http.StatusBadRequest)
		}
		a.l.Error("failed to update user", zap.String("id", userID.String()), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
