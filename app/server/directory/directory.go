package directory

import (
	"context"
	"errors"

	"user-account-center/app/server/models"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrConflict = errors.New("email or username already taken")
)

// Directory 抽象用户目录的读写操作。
// 查找均为大小写敏感；唯一性由存储层的唯一索引保证，而不是先查后写。
type Directory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// Create 创建用户，邮箱或用户名冲突时返回 ErrConflict
	Create(ctx context.Context, user *models.User) error
	// Update 应用部分更新，只改动 patch 中设置的字段，并刷新 updated_at
	Update(ctx context.Context, id uuid.UUID, patch *Patch) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// List 按创建时间排列，limit <= 0 时返回全部
	List(ctx context.Context, offset int, limit int) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
}

// Patch 显式列出允许修改的字段，未设置的字段保持原值
type Patch struct {
	Email          *string
	Username       *string
	HashedPassword *string
	Role           *string
	IsActive       *bool
	IsSuperuser    *bool
	IsVerified     *bool
	IsDeleted      *bool
	Settings       map[string]string // nil 表示不改动
}

// Apply 把补丁合并到用户记录上，是唯一的字段合并入口
func (p *Patch) Apply(user *models.User) {
	if p.Email != nil {
		user.Email = *p.Email
	}
	if p.Username != nil {
		user.Username = *p.Username
	}
	if p.HashedPassword != nil {
		user.HashedPassword = *p.HashedPassword
	}
	if p.Role != nil {
		user.Role = *p.Role
	}
	if p.IsActive != nil {
		user.IsActive = *p.IsActive
	}
	if p.IsSuperuser != nil {
		user.IsSuperuser = *p.IsSuperuser
	}
	if p.IsVerified != nil {
		user.IsVerified = *p.IsVerified
	}
	if p.IsDeleted != nil {
		user.IsDeleted = *p.IsDeleted
	}
	if p.Settings != nil {
		user.Settings = p.Settings
	}
}
