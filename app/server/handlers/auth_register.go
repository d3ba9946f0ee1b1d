package handlers

import (
	"errors"
	"net/http"

	"user-account-center/app/server/directory"
	"user-account-center/app/server/models"
	"user-account-center/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) AuthRegister(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.RegisterRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 字段校验
	if !validEmail(req.Email) || !validUsername(req.Username) {
		return a.er(c, http.StatusBadRequest)
	}
	if req.Password == "" || req.Password != req.ConfirmPassword {
		return a.er(c, http.StatusBadRequest)
	}

	// 处理密码
	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 创建用户。角色与状态位不接受请求方指定
	user := &models.User{
		Email:          req.Email,
		Username:       req.Username,
		HashedPassword: passwordHash,
		Role:           models.RoleUser,
		IsActive:       true,
	}
	if err := a.dir.Create(rctx, user); err != nil {
		if errors.Is(err, directory.ErrConflict) {
			return a.er(c, http.StatusConflict)
		}
		a.l.Error("failed to create user", zap.String("username", req.Username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.notifier.OnRegister(rctx, user)

	return c.JSON(http.StatusCreated, types.NewUserInfo(user))
}
