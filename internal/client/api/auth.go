package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/secureshare/pkg/api"
)

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if _, err := c.doJSON(ctx, Request{Method: http.MethodPost, Path: "/register", JSON: req}, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// VerifyEmail подтверждает email кодом из письма
func (c *Client) VerifyEmail(ctx context.Context, req api.VerifyCodeRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if _, err := c.doJSON(ctx, Request{Method: http.MethodPost, Path: "/verify-email", JSON: req}, &resp); err != nil {
		return nil, fmt.Errorf("verify email request failed: %w", err)
	}
	return &resp, nil
}

// LoginResult результат POST /token.
// 200 -> заполнен Token, 202 -> заполнен Challenge (требуется второй фактор).
type LoginResult struct {
	Token      *api.TokenResponse
	Challenge  *api.TwoFactorChallenge
	StatusCode int
}

// Login выполняет аутентификацию (form-encoded, как OAuth2 password flow)
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	resp, err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/token", Form: form})
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}

	result := &LoginResult{StatusCode: resp.StatusCode}

	switch resp.StatusCode {
	case http.StatusOK:
		var token api.TokenResponse
		if err := resp.Decode(&token); err != nil {
			return nil, err
		}
		if token.AccessToken == "" {
			return nil, fmt.Errorf("login response contains no access token")
		}
		result.Token = &token
	case http.StatusAccepted:
		var challenge api.TwoFactorChallenge
		if err := resp.Decode(&challenge); err != nil {
			return nil, err
		}
		result.Challenge = &challenge
	default:
		return nil, fmt.Errorf("unexpected login status %d", resp.StatusCode)
	}

	return result, nil
}

// VerifyTwoFactor подтверждает вход кодом 2FA
func (c *Client) VerifyTwoFactor(ctx context.Context, req api.VerifyCodeRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if _, err := c.doJSON(ctx, Request{Method: http.MethodPost, Path: "/verify-2fa", JSON: req}, &resp); err != nil {
		return nil, fmt.Errorf("verify 2fa request failed: %w", err)
	}
	return &resp, nil
}

// ForgotPassword запрашивает отправку кода сброса пароля
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	req := api.ForgotPasswordRequest{Email: email}
	if _, err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/forgot-password", JSON: req}); err != nil {
		return fmt.Errorf("forgot password request failed: %w", err)
	}
	return nil
}

// ResetPassword устанавливает новый пароль по коду
func (c *Client) ResetPassword(ctx context.Context, req api.ResetPasswordRequest) error {
	if _, err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/reset-password", JSON: req}); err != nil {
		return fmt.Errorf("reset password request failed: %w", err)
	}
	return nil
}

// TwoFactorStatus возвращает, включена ли 2FA
func (c *Client) TwoFactorStatus(ctx context.Context) (bool, error) {
	var resp api.TwoFactorStatusResponse
	if _, err := c.doJSON(ctx, Request{Method: http.MethodGet, Path: "/2fa-status"}, &resp); err != nil {
		return false, fmt.Errorf("2fa status request failed: %w", err)
	}
	return resp.TwoFactorEnabled, nil
}

// EnableTwoFactor включает 2FA
func (c *Client) EnableTwoFactor(ctx context.Context) (*api.TwoFactorToggleResponse, error) {
	var resp api.TwoFactorToggleResponse
	if _, err := c.doJSON(ctx, Request{Method: http.MethodPost, Path: "/enable-2fa"}, &resp); err != nil {
		return nil, fmt.Errorf("enable 2fa request failed: %w", err)
	}
	return &resp, nil
}

// DisableTwoFactor выключает 2FA
func (c *Client) DisableTwoFactor(ctx context.Context) (*api.TwoFactorToggleResponse, error) {
	var resp api.TwoFactorToggleResponse
	if _, err := c.doJSON(ctx, Request{Method: http.MethodPost, Path: "/disable-2fa"}, &resp); err != nil {
		return nil, fmt.Errorf("disable 2fa request failed: %w", err)
	}
	return &resp, nil
}

// ChangePassword меняет пароль текущего пользователя
func (c *Client) ChangePassword(ctx context.Context, req api.ChangePasswordRequest) error {
	if _, err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/change-password", JSON: req}); err != nil {
		return fmt.Errorf("change password request failed: %w", err)
	}
	return nil
}
