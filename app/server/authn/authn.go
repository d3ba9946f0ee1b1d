package authn

import (
	"context"
	"errors"

	"user-account-center/app/server/directory"
	"user-account-center/app/server/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidCredentials 覆盖全部认证失败场景，
// 不区分账号不存在与密码错误
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserDirectory 是认证器需要的最小目录能力
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, patch *directory.Patch) (*models.User, error)
}

// Hasher 是认证器需要的密码散列能力
type Hasher interface {
	VerifyAndUpgrade(plaintext, stored string) (bool, string, error)
	DummyHash(plaintext string)
}

type Authenticator struct {
	dir    UserDirectory
	hasher Hasher
	l      *zap.Logger
}

func New(dir UserDirectory, hasher Hasher, l *zap.Logger) *Authenticator {
	return &Authenticator{
		dir:    dir,
		hasher: hasher,
		l:      l,
	}
}

// Authenticate 按邮箱或用户名查找用户并校验密码
func (a *Authenticator) Authenticate(ctx context.Context, identifier string, plaintext string) (*models.User, error) {
	// 先按邮箱查找，找不到再按用户名查找
	user, err := a.dir.FindByEmail(ctx, identifier)
	if errors.Is(err, directory.ErrNotFound) {
		user, err = a.dir.FindByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			// 账号不存在时也执行一次散列，保持耗时一致
			a.hasher.DummyHash(plaintext)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	match, newHash, err := a.hasher.VerifyAndUpgrade(plaintext, user.HashedPassword)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	// hash 参数升级后持久化新 hash
	if newHash != "" {
		updated, err := a.dir.Update(ctx, user.ID, &directory.Patch{HashedPassword: &newHash})
		if err != nil {
			a.l.Warn("failed to persist upgraded password hash",
				zap.String("id", user.ID.String()),
				zap.Error(err),
			)
		} else {
			user = updated
		}
	}

	// 被停用或已注销的账号不允许登录
	if !user.IsActive || user.IsDeleted {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
