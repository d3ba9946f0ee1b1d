package handlers

import (
	"user-account-center/app/server/authn"
	"user-account-center/app/server/config"
	"user-account-center/app/server/directory"
	"user-account-center/app/server/events"
	"user-account-center/app/server/jwt"
	"user-account-center/app/server/password"

	"go.uber.org/zap"
)

type App struct {
	l        *zap.Logger          // 日志
	dir      directory.Directory  // 用户目录
	jwt      *jwt.JWT             // JWT ，用于无状态验证
	hasher   *password.Hasher     // 密码散列
	auth     *authn.Authenticator // 凭据认证
	notifier events.Notifier      // 账户事件通知
	cfg      *config.Config       // 配置
}

func NewApp(
	l *zap.Logger,
	dir directory.Directory,
	j *jwt.JWT,
	hasher *password.Hasher,
	auth *authn.Authenticator,
	notifier events.Notifier,
	cfg *config.Config,
) *App {
	return &App{
		l:        l,
		dir:      dir,
		jwt:      j,
		hasher:   hasher,
		auth:     auth,
		notifier: notifier,
		cfg:      cfg,
	}
}
