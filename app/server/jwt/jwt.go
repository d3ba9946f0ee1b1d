package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// token 用途，作为 audience 写入声明，避免互相混用
const (
	PurposeAuth   = "auth"   // 会话 token
	PurposeReset  = "reset"  // 重设密码 token
	PurposeVerify = "verify" // 邮箱验证 token
)

var (
	ErrExpired = errors.New("token is expired")
	ErrInvalid = errors.New("token is invalid")
)

type JWT struct {
	key []byte
}

type claims struct {
	jwtlib.RegisteredClaims
	UserID string `json:"uid"`
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

// Sign 为指定用户签出一个带用途与有效期的 token
func (j *JWT) Sign(userID uuid.UUID, purpose string, lifetime time.Duration) (string, error) {
	now := time.Now()

	// 创建声明
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, &claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Audience:  jwtlib.ClaimStrings{purpose},
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(lifetime)),
		},
		UserID: userID.String(),
	})

	// 签名并返回
	return token.SignedString(j.key)
}

// Parse 验证 token 并还原用户 ID 。
// 过期返回 ErrExpired ；签名错误、格式破损、算法或用途不匹配统一返回 ErrInvalid 。
func (j *JWT) Parse(tokenString string, purpose string) (uuid.UUID, error) {
	if len(tokenString) == 0 {
		return uuid.Nil, ErrInvalid
	}

	c := &claims{}
	token, err := jwtlib.ParseWithClaims(tokenString, c, func(token *jwtlib.Token) (interface{}, error) {
		return j.key, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithAudience(purpose),
		jwtlib.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return uuid.Nil, ErrExpired
		}
		return uuid.Nil, ErrInvalid
	}
	if !token.Valid {
		return uuid.Nil, ErrInvalid
	}

	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalid
	}

	return userID, nil
}
