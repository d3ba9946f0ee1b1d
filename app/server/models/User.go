package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 角色取值，固定三档
const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

type User struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`

	// 基础信息
	Email    string `gorm:"column:email;uniqueIndex"`    // 邮箱，全局唯一
	Username string `gorm:"column:username;uniqueIndex"` // 用户名，全局唯一，5-20 位
	Role     string `gorm:"column:role;default:user"`    // 角色： user / staff / admin

	// 登录与授权认证相关
	HashedPassword string `gorm:"column:hashed_password"`        // 密码，使用 argon2id 储存
	IsActive       bool   `gorm:"column:is_active;default:true"` // 停用后禁止认证
	IsSuperuser    bool   `gorm:"column:is_superuser"`           // 超级用户：跳过角色判定，直接通过全部授权检查
	IsVerified     bool   `gorm:"column:is_verified"`            // 邮箱是否已验证
	IsDeleted      bool   `gorm:"column:is_deleted"`             // 软删除标记：禁止认证，但管理员仍可见

	// 自由设置项，无固定结构
	Settings map[string]string `gorm:"column:settings;serializer:json"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	// ID 在创建时分配，之后不再变化
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
