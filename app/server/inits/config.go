package inits

import (
	"fmt"

	"user-account-center/app/server/config"

	"github.com/caarlos0/env/v11"
)

func Config() (*config.Config, error) {
	// 环境变量自动映射到配置结构
	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}
