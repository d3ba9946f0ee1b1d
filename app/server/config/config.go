package config

import (
	"strings"
	"time"
)

type Config struct {
	System struct {
		Mode                  string   `env:"MODE" envDefault:"dev"`                                                                  // 以 p 开头视为生产环境
		Listen                string   `env:"LISTEN" envDefault:":1323"`                                                              // 监听地址
		DBConnectionString    string   `env:"DB_CONN,required"`                                                                       // Postgres 数据库的连接字符串
		RedisConnectionString string   `env:"REDIS_CONN,required"`                                                                    // Redis 数据库的连接字符串
		CORSOrigins           []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"` // 允许携带凭据的前端来源
	}
	Security struct {
		SignatureSecretKey   string        `env:"SIGNATURE_SECRET_KEY,required"`                // 签名密钥，用于签发 JWT ，更新会导致旧有会话失效
		TokenLifetime        time.Duration `env:"TOKEN_LIFETIME" envDefault:"1h"`               // 会话 token 有效期，同时作为 cookie 的 max-age
		ResetTokenLifetime   time.Duration `env:"RESET_TOKEN_LIFETIME" envDefault:"1h"`         // 重设密码 token 有效期
		VerifyTokenLifetime  time.Duration `env:"VERIFY_TOKEN_LIFETIME" envDefault:"1h"`        // 邮箱验证 token 有效期
		InitialAdminPassword string        `env:"INITIAL_ADMIN_PASSWORD" envDefault:"password"` // 首次启动时初始管理员的密码
	}
}

func (c *Config) IsProd() bool {
	return strings.HasPrefix(strings.ToLower(c.System.Mode), "p")
}
