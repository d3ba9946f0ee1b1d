package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"user-account-center/app/server/constants"
	"user-account-center/app/server/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ Directory = (*GormDirectory)(nil)

// GormDirectory 基于 Postgres 的用户目录实现，
// 按 ID 的查找走 redis 读穿缓存（token 认证的热路径）
type GormDirectory struct {
	db  *gorm.DB
	rdb *redis.Client
	l   *zap.Logger
}

func NewGorm(db *gorm.DB, rdb *redis.Client, l *zap.Logger) *GormDirectory {
	return &GormDirectory{
		db:  db,
		rdb: rdb,
		l:   l,
	}
}

func (d *GormDirectory) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User

	// 查询缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyUserInfo, id)
	if cacheBytes, err := d.rdb.Get(ctx, cacheKey).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			d.l.Error("failed to query cache for user info", zap.String("id", id.String()), zap.Error(err))
		}
	} else if err = json.Unmarshal(cacheBytes, &user); err != nil {
		d.l.Error("failed to unmarshal user info", zap.String("id", id.String()), zap.Error(err))
		// 可能是无效的缓存，清理掉
		d.rdb.Del(ctx, cacheKey)
	} else {
		return &user, nil
	}

	// 查询数据库
	if err := d.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	// 加入缓存，方便下一次查询
	if cacheBytes, err := json.Marshal(&user); err != nil {
		d.l.Error("failed to marshal user info", zap.String("id", id.String()), zap.Error(err))
	} else {
		d.rdb.Set(ctx, cacheKey, cacheBytes, constants.CacheExpireUserInfo)
	}

	return &user, nil
}

func (d *GormDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := d.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (d *GormDirectory) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := d.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (d *GormDirectory) Create(ctx context.Context, user *models.User) error {
	if err := d.db.WithContext(ctx).Create(user).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (d *GormDirectory) Update(ctx context.Context, id uuid.UUID, patch *Patch) (*models.User, error) {
	var user models.User
	if err := d.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	patch.Apply(&user)

	// updated_at 由 gorm 按配置的时区刷新
	if err := d.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, translate(err)
	}

	d.invalidate(ctx, id)
	return &user, nil
}

func (d *GormDirectory) Delete(ctx context.Context, id uuid.UUID) error {
	result := d.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	d.invalidate(ctx, id)
	return nil
}

func (d *GormDirectory) List(ctx context.Context, offset int, limit int) ([]models.User, error) {
	var users []models.User

	queryBase := d.db.WithContext(ctx).Model(&models.User{}).Order("created_at ASC")
	if limit > 0 {
		queryBase = queryBase.Limit(limit).Offset(offset)
	}

	if err := queryBase.Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (d *GormDirectory) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}

func (d *GormDirectory) invalidate(ctx context.Context, id uuid.UUID) {
	if err := d.rdb.Del(ctx, fmt.Sprintf(constants.CacheKeyUserInfo, id)).Err(); err != nil {
		d.l.Error("failed to invalidate user cache", zap.String("id", id.String()), zap.Error(err))
	}
}

// translate 把存储层错误映射到目录错误
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}
