package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// EmailPattern определяет базовый формат email вида local@domain.tld
var EmailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MinSecretLen минимальная длина пароля
	MinSecretLen = 6
)

// Ошибки валидации, отображаются пользователю как есть
var (
	ErrUsernameTooShort = fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	ErrSecretTooShort   = fmt.Errorf("password must be at least %d characters long", MinSecretLen)
	ErrInvalidEmail     = errors.New("invalid email format")
)

// ValidateUsername проверяет минимальные требования к username
func ValidateUsername(username string) error {
	if len(username) < MinUsernameLen {
		return ErrUsernameTooShort
	}
	return nil
}

// ValidateSecret проверяет минимальные требования к паролю
func ValidateSecret(secret string) error {
	if len(secret) < MinSecretLen {
		return ErrSecretTooShort
	}
	return nil
}

// ValidateEmail проверяет, что email соответствует формату local@domain.tld
func ValidateEmail(email string) error {
	if !EmailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateSignup runs all three signup checks independently and reports
// every violation at once instead of stopping at the first one.
// Returns nil when all checks pass.
func ValidateSignup(username, secret, email string) error {
	return errors.Join(
		ValidateUsername(username),
		ValidateSecret(secret),
		ValidateEmail(email),
	)
}
