package types

import "net/http"

type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage 生成统一的错误响应体：只携带状态文本，不泄露失败细节
func NewErrorMessage(statusCode int) *ErrorMessage {
	return &ErrorMessage{
		Message: http.StatusText(statusCode),
	}
}
