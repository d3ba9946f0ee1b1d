// Package authz 提供授权判定。
// 全部判定都是针对已解析用户的纯谓词，不访问存储。
package authz

import "user-account-center/app/server/models"

// Active 判断账号是否处于可用状态
func Active(user *models.User) bool {
	return user.IsActive
}

// Admin 判断是否具有管理员能力： admin 角色或超级用户
func Admin(user *models.User) bool {
	return user.Role == models.RoleAdmin || user.IsSuperuser
}

// StaffOrAdmin 判断是否具有员工及以上能力
func StaffOrAdmin(user *models.User) bool {
	return user.Role == models.RoleStaff || user.Role == models.RoleAdmin || user.IsSuperuser
}
