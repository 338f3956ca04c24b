// Package security управляет настройками безопасности аккаунта: 2FA и смена пароля.
package security

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/secureshare/internal/client/api"
	"github.com/iudanet/secureshare/internal/validation"
	pkgapi "github.com/iudanet/secureshare/pkg/api"
)

//go:generate moq -out api_mock.go . API

// API методы сервера для настроек безопасности
type API interface {
	TwoFactorStatus(ctx context.Context) (bool, error)
	EnableTwoFactor(ctx context.Context) (*pkgapi.TwoFactorToggleResponse, error)
	DisableTwoFactor(ctx context.Context) (*pkgapi.TwoFactorToggleResponse, error)
	ChangePassword(ctx context.Context, req pkgapi.ChangePasswordRequest) error
}

var _ API = (*api.Client)(nil)

// ToggleResult результат включения или выключения 2FA
type ToggleResult struct {
	Message string
	Enabled bool
}

// Service операции безопасности аккаунта
type Service struct {
	api    API
	logger *slog.Logger
}

// NewService создает сервис
func NewService(client API, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{api: client, logger: logger}
}

// Status возвращает, включена ли 2FA
func (s *Service) Status(ctx context.Context) (bool, error) {
	enabled, err := s.api.TwoFactorStatus(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load 2FA status: %w", err)
	}
	return enabled, nil
}

// Enable включает 2FA
func (s *Service) Enable(ctx context.Context) (*ToggleResult, error) {
	return s.set(ctx, true)
}

// Disable выключает 2FA
func (s *Service) Disable(ctx context.Context) (*ToggleResult, error) {
	return s.set(ctx, false)
}

// Toggle переключает 2FA в противоположное состояние
func (s *Service) Toggle(ctx context.Context) (*ToggleResult, error) {
	enabled, err := s.Status(ctx)
	if err != nil {
		return nil, err
	}
	return s.set(ctx, !enabled)
}

func (s *Service) set(ctx context.Context, enable bool) (*ToggleResult, error) {
	call := s.api.DisableTwoFactor
	if enable {
		call = s.api.EnableTwoFactor
	}

	resp, err := call(ctx)
	if err != nil {
		// после ошибки состояние на сервере неизвестно, перечитываем
		result := &ToggleResult{Message: "Error updating 2FA settings: " + api.Detail(err)}
		if enabled, statusErr := s.api.TwoFactorStatus(ctx); statusErr == nil {
			result.Enabled = enabled
		} else {
			s.logger.Warn("failed to refresh 2FA status", "error", statusErr)
		}
		return result, fmt.Errorf("failed to update 2FA: %w", err)
	}

	return &ToggleResult{Enabled: resp.Enabled, Message: resp.Message}, nil
}

// ChangePassword меняет пароль после локальной проверки полей
func (s *Service) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	if err := validation.Required("current password", current); err != nil {
		return err
	}
	if err := validation.ValidateNewPassword(newPassword, confirm); err != nil {
		return err
	}

	err := s.api.ChangePassword(ctx, pkgapi.ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     newPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}
