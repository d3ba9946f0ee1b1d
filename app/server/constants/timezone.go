package constants

import "time"

// AppTimezone 为记录时间戳使用的固定时区 (UTC+7)
var AppTimezone = time.FixedZone("UTC+7", 7*60*60)
