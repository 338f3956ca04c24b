package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse представляет ответ на регистрацию.
// Если RequiresVerification == true, токен не выдается до подтверждения email.
type RegisterResponse struct {
	AccessToken          string `json:"access_token,omitempty"`
	TokenType            string `json:"token_type,omitempty"`
	UserID               string `json:"user_id,omitempty"`
	Message              string `json:"message,omitempty"`
	RequiresVerification bool   `json:"requires_verification"`
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TwoFactorChallenge возвращается POST /token со статусом 202,
// когда для входа требуется второй фактор
type TwoFactorChallenge struct {
	UserID  string `json:"user_id"`
	Message string `json:"message,omitempty"`
}

// VerifyCodeRequest используется для /verify-email и /verify-2fa
type VerifyCodeRequest struct {
	UserID string `json:"user_id"`
	Code   string `json:"code"`
}

// ForgotPasswordRequest запрос кода сброса пароля
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest установка нового пароля по коду из письма
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

// ChangePasswordRequest смена пароля авторизованным пользователем
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// TwoFactorStatusResponse ответ GET /2fa-status
type TwoFactorStatusResponse struct {
	TwoFactorEnabled bool `json:"two_factor_enabled"`
}

// TwoFactorToggleResponse ответ POST /enable-2fa и /disable-2fa
type TwoFactorToggleResponse struct {
	Message string `json:"message"`
	Enabled bool   `json:"enabled"`
}

// MessageResponse универсальный ответ с сообщением
type MessageResponse struct {
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}
