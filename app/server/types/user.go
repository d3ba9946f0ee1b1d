package types

import (
	"time"

	"user-account-center/app/server/models"
)

type UserInfo struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	Username    string            `json:"username"`
	Role        string            `json:"role"`
	IsActive    bool              `json:"is_active"`
	IsSuperuser bool              `json:"is_superuser"`
	IsVerified  bool              `json:"is_verified"`
	IsDeleted   bool              `json:"is_deleted"`
	Settings    map[string]string `json:"settings"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func NewUserInfo(user *models.User) *UserInfo {
	return &UserInfo{
		ID:          user.ID.String(),
		Email:       user.Email,
		Username:    user.Username,
		Role:        user.Role,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
		IsVerified:  user.IsVerified,
		IsDeleted:   user.IsDeleted,
		Settings:    user.Settings,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// UserSelfUpdate 为用户自助修改的字段，角色与状态位不在其列
type UserSelfUpdate struct {
	Email           *string           `json:"email"`
	Username        *string           `json:"username"`
	Password        *string           `json:"password"`
	ConfirmPassword *string           `json:"confirmPassword"`
	Settings        map[string]string `json:"settings"`
}

// UserAdminUpdate 为管理端可修改的全部字段
type UserAdminUpdate struct {
	Email       *string           `json:"email"`
	Username    *string           `json:"username"`
	Password    *string           `json:"password"`
	Role        *string           `json:"role"`
	IsActive    *bool             `json:"is_active"`
	IsSuperuser *bool             `json:"is_superuser"`
	IsVerified  *bool             `json:"is_verified"`
	IsDeleted   *bool             `json:"is_deleted"`
	Settings    map[string]string `json:"settings"`
}

type UserListResponse struct {
	Limit   int        `json:"limit"`
	PageMax int64      `json:"page_max"`
	List    []UserInfo `json:"list"`
}

type DashboardMessage struct {
	Message string `json:"message"`
}
