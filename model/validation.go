package model

import (
	"net/mail"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// MaxDescriptionLength 电影简介最大长度
const MaxDescriptionLength = 200

// EarliestReleaseDate 最早可接受的上映日期（电影诞生日）
var EarliestReleaseDate = NewDate(1895, time.December, 28)

// ValidateFilm 校验电影记录，返回所有被违反的规则（合法时为空）
func ValidateFilm(film *Film) []string {
	var violations []string
	if strings.TrimSpace(film.Name) == "" {
		violations = append(violations, "name must not be empty")
	}
	if utf8.RuneCountInString(film.Description) > MaxDescriptionLength {
		violations = append(violations, "description must be at most 200 characters")
	}
	if film.ReleaseDate.IsZero() || film.ReleaseDate.Before(EarliestReleaseDate) {
		violations = append(violations, "release date cannot precede 1895-12-28")
	}
	if film.Duration <= 0 {
		violations = append(violations, "duration must be positive")
	}
	return violations
}

// ValidateUser 校验用户记录，返回所有被违反的规则（合法时为空）
func ValidateUser(user *User) []string {
	var violations []string
	if strings.TrimSpace(user.Email) == "" {
		violations = append(violations, "email must not be empty")
	} else if !isValidEmail(user.Email) {
		violations = append(violations, "email must be a valid address")
	}
	if user.Login == "" {
		violations = append(violations, "login must not be empty")
	} else if strings.ContainsFunc(user.Login, unicode.IsSpace) {
		violations = append(violations, "login must not contain whitespace")
	}
	if user.Birthday.IsZero() {
		violations = append(violations, "birthday must be provided")
	} else if user.Birthday.After(Today()) {
		violations = append(violations, "birthday cannot be in the future")
	}
	return violations
}

// isValidEmail 基础地址格式检查（必须含 "@" 且能被解析）
func isValidEmail(email string) bool {
	if !strings.Contains(email, "@") {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
