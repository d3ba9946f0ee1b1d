package handlers

import (
	"regexp"
	"unicode/utf8"

	"user-account-center/app/server/models"
)

const (
	usernameMinLen = 5
	usernameMaxLen = 20
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

func validUsername(username string) bool {
	// 长度按字符数计算，不是字节数
	length := utf8.RuneCountInString(username)
	return length >= usernameMinLen && length <= usernameMaxLen
}

func validRole(role string) bool {
	switch role {
	case models.RoleUser, models.RoleStaff, models.RoleAdmin:
		return true
	default:
		return false
	}
}
