package events

import (
	"context"
	"encoding/json"

	"user-account-center/app/server/constants"
	"user-account-center/app/server/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Notifier 接收账户生命周期事件，与核心流程解耦。
// 实现不应阻塞请求，也不应让失败影响主流程。
type Notifier interface {
	OnRegister(ctx context.Context, user *models.User)
	OnForgotPassword(ctx context.Context, user *models.User, token string)
	OnVerifyRequest(ctx context.Context, user *models.User, token string)
}

// LogNotifier 把事件写入日志
type LogNotifier struct {
	l *zap.Logger
}

func NewLogNotifier(l *zap.Logger) *LogNotifier {
	return &LogNotifier{l: l}
}

func (n *LogNotifier) OnRegister(ctx context.Context, user *models.User) {
	n.l.Info("user registered",
		zap.String("id", user.ID.String()),
		zap.String("username", user.Username),
	)
}

func (n *LogNotifier) OnForgotPassword(ctx context.Context, user *models.User, token string) {
	n.l.Info("user requested password reset",
		zap.String("id", user.ID.String()),
		zap.String("token", token),
	)
}

func (n *LogNotifier) OnVerifyRequest(ctx context.Context, user *models.User, token string) {
	n.l.Info("user requested email verification",
		zap.String("id", user.ID.String()),
		zap.String("token", token),
	)
}

// RedisNotifier 把事件发布到 redis 频道，供外部系统（例如邮件服务）订阅
type RedisNotifier struct {
	rdb *redis.Client
	l   *zap.Logger
}

func NewRedisNotifier(rdb *redis.Client, l *zap.Logger) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, l: l}
}

type eventPayload struct {
	Event  string `json:"event"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token,omitempty"`
}

func (n *RedisNotifier) publish(ctx context.Context, payload *eventPayload) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		n.l.Error("failed to marshal event payload", zap.String("event", payload.Event), zap.Error(err))
		return
	}
	if err := n.rdb.Publish(ctx, constants.EventChannel, payloadBytes).Err(); err != nil {
		n.l.Error("failed to publish event", zap.String("event", payload.Event), zap.Error(err))
	}
}

func (n *RedisNotifier) OnRegister(ctx context.Context, user *models.User) {
	n.publish(ctx, &eventPayload{Event: "register", UserID: user.ID.String(), Email: user.Email})
}

func (n *RedisNotifier) OnForgotPassword(ctx context.Context, user *models.User, token string) {
	n.publish(ctx, &eventPayload{Event: "forgot-password", UserID: user.ID.String(), Email: user.Email, Token: token})
}

func (n *RedisNotifier) OnVerifyRequest(ctx context.Context, user *models.User, token string) {
	n.publish(ctx, &eventPayload{Event: "verify-request", UserID: user.ID.String(), Email: user.Email, Token: token})
}

// Fanout 依次通知全部接收者
type Fanout []Notifier

func (f Fanout) OnRegister(ctx context.Context, user *models.User) {
	for _, n := range f {
		n.OnRegister(ctx, user)
	}
}

func (f Fanout) OnForgotPassword(ctx context.Context, user *models.User, token string) {
	for _, n := range f {
		n.OnForgotPassword(ctx, user, token)
	}
}

func (f Fanout) OnVerifyRequest(ctx context.Context, user *models.User, token string) {
	for _, n := range f {
		n.OnVerifyRequest(ctx, user, token)
	}
}
