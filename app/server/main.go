package main

import (
	"fmt"
	"log"

	"user-account-center/app/server/authn"
	"user-account-center/app/server/directory"
	"user-account-center/app/server/events"
	"user-account-center/app/server/handlers"
	"user-account-center/app/server/inits"
	"user-account-center/app/server/jwt"
	"user-account-center/app/server/middlewares"
	"user-account-center/app/server/password"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.IsProd())
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString, cfg.Security.InitialAdminPassword)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 组装核心组件
	dir := directory.NewGorm(db, rdb, l)
	hasher := password.NewHasher()
	auth := authn.New(dir, hasher, l)
	notifier := events.Fanout{
		events.NewLogNotifier(l),
		events.NewRedisNotifier(rdb, l),
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, dir, j, hasher, auth, notifier, cfg)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.System.CORSOrigins,
		AllowCredentials: true,
	}))

	// 绑定 echo 服务
	handlers.RegisterHandlers(e, handlerApp, middlewares.UserAuth(j, dir, l))

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
