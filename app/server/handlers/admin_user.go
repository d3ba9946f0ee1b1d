package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"user-account-center/app/server/authz"
	"user-account-center/app/server/directory"
	"user-account-center/app/server/types"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) AdminDashboard(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, err, statusCode := a.requireUser(c, authz.Admin)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, &types.DashboardMessage{
		Message: fmt.Sprintf("Welcome Admin %s!", user.Username),
	})
}

func (a *App) AdminUserList(c echo.Context) error {
	// 抓取 user 信息（认证）。列表对员工开放
	if _, err, statusCode := a.requireUser(c, authz.StaffOrAdmin); err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	showAll, page, limit := a.parsePagination(a.uintQueryParam(c, "page"), a.uintQueryParam(c, "limit"))

	offset := -1
	if !showAll {
		offset = page * limit
	}
	users, err := a.dir.List(rctx, offset, limit)
	if err != nil {
		a.l.Error("failed to get user list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	usersCount, err := a.dir.Count(rctx)
	if err != nil {
		a.l.Error("failed to count user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resUsers := []types.UserInfo{}
	for i := range users {
		resUsers = append(resUsers, *types.NewUserInfo(&users[i]))
	}

	return c.JSON(http.StatusOK, &types.UserListResponse{
		Limit:   limit,
		PageMax: a.calcMaxPage(usersCount, showAll, limit),
		List:    resUsers,
	})
}

func (a *App) AdminUserGet(c echo.Context) error {
	// 抓取 user 信息（认证）
	if _, err, statusCode := a.requireUser(c, authz.Admin); err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 从数据库中获得指定的用户
	user, err := a.dir.FindByID(rctx, id)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to get user", zap.String("id", id.String()), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, types.NewUserInfo(user))
}

func (a *App) AdminUserUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	if _, err, statusCode := a.requireUser(c, authz.Admin); err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.UserAdminUpdate
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 构建补丁，管理端可以改动全部字段
	patch := &directory.Patch{
		IsActive:    req.IsActive,
		IsSuperuser: req.IsSuperuser,
		IsVerified:  req.IsVerified,
		IsDeleted:   req.IsDeleted,
		Settings:    req.Settings,
	}
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
	if req.Role != nil {
		if !validRole(*req.Role) {
			return a.er(c, http.StatusBadRequest)
		}
		patch.Role = req.Role
	}
	if req.Password != nil {
		if *req.Password == "" {
			return a.er(c, http.StatusBadRequest)
		}
		passwordHash, err := a.hasher.Hash(*req.Password)
		if err != nil {
			a.l.Error("failed to hash password", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
		patch.HashedPassword = &passwordHash
	}

	// 更新用户信息
	updated, err := a.dir.Update(rctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrConflict):
			return a.er(c, http.StatusConflict)
		case errors.Is(err, directory.ErrNotFound):
			return a.er(c, http.StatusNotFound)
		default:
			a.l.Error("failed to update user", zap.String("id", id.String()), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusOK, types.NewUserInfo(updated))
}

func (a *App) AdminUserDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	if _, err, statusCode := a.requireUser(c, authz.Admin); err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 删除用户
	if err := a.dir.Delete(rctx, id); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to delete user", zap.String("id", id.String()), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
