package constants

// AuthCookieName 为携带会话 token 的 cookie 名称
const AuthCookieName = "account_token"

// ContextKeyUser 为认证中间件写入 echo context 的当前用户
const ContextKeyUser = "user"
