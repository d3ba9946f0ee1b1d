package inits

import (
	"fmt"
	"time"

	"user-account-center/app/server/constants"
	"user-account-center/app/server/models"

	"github.com/alexedwards/argon2id"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string, initialAdminPassword string) (db *gorm.DB, err error) {
	// 打开连接。时间戳统一落在固定的 UTC+7 时区；
	// 唯一索引冲突翻译为 gorm.ErrDuplicatedKey ，由目录层映射
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().In(constants.AppTimezone)
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db, initialAdminPassword); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
	)
}

func initData(db *gorm.DB, initialAdminPassword string) (err error) {
	// 查询现有记录数量
	var counter int64

	// 初始化用户
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter == 0 { // 没有任何用户，添加初始超级用户
		// 创建密码
		var passwordHash string
		if passwordHash, err = argon2id.CreateHash(initialAdminPassword, argon2id.DefaultParams); err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		// 插入记录
		if err = db.Create(&models.User{
			Email:          "admin@localhost",
			Username:       "admin",
			Role:           models.RoleAdmin,
			HashedPassword: passwordHash,
			IsActive:       true,
			IsSuperuser:    true,
			IsVerified:     true,
		}).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
