package handlers

import (
	"errors"
	"net/http"

	"user-account-center/app/server/directory"
	"user-account-center/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) UserInfoGetSelf(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.requireUser(c, nil)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, types.NewUserInfo(user))
}

func (a *App) UserInfoUpdateSelf(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.requireUser(c, nil)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.UserSelfUpdate
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 构建补丁，自助修改只允许基础字段
	patch := &directory.Patch{}
	if req.Email != nil {
		if !validEmail(*req.Email) {
			return a.er(c, http.StatusBadRequest)
		}
		patch.Email = req.Email
	}
	if req.Username != nil {
		if !validUsername(*req.Username) {
			return a.er(c, http.StatusBadRequest)
		}
		patch.Username = req.Username
	}
	if req.Password != nil {
		if *req.Password == "" || req.ConfirmPassword == nil || *req.Password != *req.ConfirmPassword {
			return a.er(c, http.StatusBadRequest)
		}
		passwordHash, err := a.hasher.Hash(*req.Password)
		if err != nil {
			a.l.Error("failed to hash password", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
		patch.HashedPassword = &passwordHash
	}
	if req.Settings != nil {
		patch.Settings = req.Settings
	}

	// 更新用户信息
	updated, err := a.dir.Update(rctx, user.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrConflict):
			return a.er(c, http.StatusConflict)
		case errors.Is(err, directory.ErrNotFound):
			return a.er(c, http.StatusNotFound)
		default:
			a.l.Error("failed to update user", zap.String("id", user.ID.String()), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, types.NewUserInfo(updated))
}

func (a *App) UserDeleteSelf(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.requireUser(c, nil)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 删除用户（物理删除）
	if err := a.dir.Delete(rctx, user.ID); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to delete user", zap.String("id", user.ID.String()), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
