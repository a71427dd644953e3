package validator

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username must be at most 50 characters")
	ErrUsernameHasAt    = errors.New("username must not contain @")
	ErrEmailRequired    = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes")
)

const (
	maxUsernameLen = 50
	minPasswordLen = 8
	// bcryptは72バイトを超える部分を無視する
	maxPasswordBytes = 72
)

// サインアップの入力を検証
func ValidateRegister(username, email, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameRequired
	}
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return ErrUsernameTooLong
	}
	// ログインはユーザー名とメールを同じ欄で受けるので、メールと紛れる名前は不可
	if strings.Contains(username, "@") {
		return ErrUsernameHasAt
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}

	if password == "" {
		return ErrPasswordRequired
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	if !isEmailLike(email) {
		return ErrInvalidEmail
	}
	return nil
}

// "Name <a@b>"の形は受け付けない
func isEmailLike(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
