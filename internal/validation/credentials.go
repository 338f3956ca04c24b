package validation

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"
)

// ErrValidation базовая ошибка валидации. Все ошибки пакета оборачивают ее,
// чтобы вызывающий код мог отличить их от ошибок сети через errors.Is.
var ErrValidation = errors.New("validation failed")

// MinPasswordLen минимальная длина нового пароля
const MinPasswordLen = 8

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Required проверяет, что обязательное поле не пустое (пробелы не считаются)
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s cannot be empty", field)
	}
	return nil
}

// ValidateEmail проверяет email: не пустой и разбирается как адрес
func ValidateEmail(email string) error {
	if err := Required("email", email); err != nil {
		return err
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Address != strings.TrimSpace(email) {
		return invalid("invalid email address: %s", email)
	}

	return nil
}

// ValidateNewPassword проверяет новый пароль и его подтверждение
// Порядок проверок: заполненность, совпадение, длина
func ValidateNewPassword(password, confirm string) error {
	if password == "" {
		return invalid("new password cannot be empty")
	}

	if password != confirm {
		return invalid("New password and confirmation do not match")
	}

	if len(password) < MinPasswordLen {
		return invalid("Password must be at least %d characters", MinPasswordLen)
	}

	return nil
}

// ValidateCode проверяет код подтверждения (email, 2FA, сброс пароля)
func ValidateCode(code string) error {
	return Required("code", code)
}

// ParseMaxViews разбирает лимит просмотров ссылки.
// Пустая строка означает отсутствие лимита (nil).
func ParseMaxViews(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return nil, invalid("max views must be a positive number, got %q", s)
	}

	return &n, nil
}

// DateLayout формат дат фильтра (как у <input type="date">)
const DateLayout = "2006-01-02"

// ValidateDate проверяет дату фильтра; пустая строка допустима
func ValidateDate(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return invalid("%s must be a date in YYYY-MM-DD format, got %q", field, value)
	}
	return nil
}
