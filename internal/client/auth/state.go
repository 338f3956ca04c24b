package auth

import "fmt"

// State состояние процесса аутентификации
type State int

const (
	Anonymous State = iota
	AwaitingEmailVerification
	AwaitingTwoFactor
	Authenticated
	ForgotPassword
	ResetPassword
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case AwaitingEmailVerification:
		return "awaiting_email_verification"
	case AwaitingTwoFactor:
		return "awaiting_two_factor"
	case Authenticated:
		return "authenticated"
	case ForgotPassword:
		return "forgot_password"
	case ResetPassword:
		return "reset_password"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Названия счетчиков в countdown.Timers
const (
	TimerTwoFactorTTL      = "two_factor_ttl"
	TimerTwoFactorCooldown = "two_factor_cooldown"
	TimerResetTTL          = "reset_ttl"
	TimerForgotCooldown    = "forgot_cooldown"
)

const (
	// ChallengeSeconds срок жизни кода 2FA и пауза перед повторной отправкой
	ChallengeSeconds = 60
	// ResetSeconds срок жизни кода сброса и пауза перед повторным запросом
	ResetSeconds = 60
)

// Сообщения пользователю
const (
	MsgVerifyEmail       = "Check your email for the verification code"
	MsgTwoFactorSent     = "Check your email for the 2FA code"
	MsgTwoFactorResent   = "A new 2FA code was sent to your email."
	MsgTwoFactorRequired = "Enter the 2FA code from the email."
	MsgTwoFactorFailed   = "2FA verification failed. Check the code and try again."
	MsgResetSent         = "If the email is registered, a reset code has been sent."
	MsgPasswordReset     = "Password changed successfully. You can now sign in with your new password."
	MsgSessionExpired    = "session expired, please login again"
)

// Snapshot копия текущего состояния машины для отображения
type Snapshot struct {
	Email             string // subject сессии или email в процессе сброса пароля
	Message           string
	ChallengeUserID   string
	State             State
	TwoFactorTTL      int
	TwoFactorCooldown int
	ResetTTL          int
	ForgotCooldown    int
	Expired           bool // сессия завершена из-за 401
}
