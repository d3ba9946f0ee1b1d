package constants

import "time"

const (
	CacheKeyUserInfo = "account:user:info:%s" // %s -> user id
)

const (
	CacheExpireUserInfo = 15 * time.Minute
)

// EventChannel 为账户事件的 redis 发布频道
const EventChannel = "account:events"
