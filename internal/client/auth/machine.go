// Package auth реализует клиентский процесс аутентификации:
// вход, регистрацию, подтверждение email, 2FA, сброс пароля и восстановление сессии.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/secureshare/internal/client/api"
	"github.com/iudanet/secureshare/internal/client/countdown"
	"github.com/iudanet/secureshare/internal/client/storage"
	"github.com/iudanet/secureshare/internal/validation"
	pkgapi "github.com/iudanet/secureshare/pkg/api"
)

var (
	// ErrInvalidState операция недоступна в текущем состоянии
	ErrInvalidState = errors.New("operation not allowed in current state")
	// ErrCodeRequired не введен код подтверждения
	ErrCodeRequired = fmt.Errorf("%w: code is required", validation.ErrValidation)
	// ErrResetCodeExpired срок действия кода сброса истек
	ErrResetCodeExpired = errors.New("reset code expired, request a new one")
)

//go:generate moq -out api_mock.go . API

// API методы сервера, которые использует машина
type API interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	VerifyEmail(ctx context.Context, req pkgapi.VerifyCodeRequest) (*pkgapi.TokenResponse, error)
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	VerifyTwoFactor(ctx context.Context, req pkgapi.VerifyCodeRequest) (*pkgapi.TokenResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req pkgapi.ResetPasswordRequest) error
}

var _ API = (*api.Client)(nil)

// FlowError ошибка шага аутентификации с сообщением сервера
type FlowError struct {
	Err     error
	Op      string
	Message string // готовое сообщение, если задано
}

func (e *FlowError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Op + " failed: " + api.Detail(e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// Machine конечный автомат аутентификации.
// Сетевые вызовы выполняются без блокировки: обработчик 401 (SessionExpired)
// вызывается синхронно из HTTP клиента и сам берет блокировку.
type Machine struct {
	api      API
	sessions storage.SessionStorage
	timers   *countdown.Timers
	logger   *slog.Logger

	mu          sync.Mutex
	state       State
	email       string // subject сессии, email регистрации или сброса
	password    string // нужен для повторной отправки кода 2FA
	challengeID string
	message     string
	expired     bool
}

// NewMachine создает машину в состоянии Anonymous
func NewMachine(client API, sessions storage.SessionStorage, timers *countdown.Timers, logger *slog.Logger) *Machine {
	if timers == nil {
		timers = countdown.New(countdown.DefaultInterval)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Machine{
		api:      client,
		sessions: sessions,
		timers:   timers,
		logger:   logger,
		state:    Anonymous,
	}
}

// State возвращает текущее состояние
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Snapshot возвращает копию состояния вместе со значениями счетчиков
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		State:             m.state,
		Email:             m.email,
		Message:           m.message,
		ChallengeUserID:   m.challengeID,
		Expired:           m.expired,
		TwoFactorTTL:      m.timers.Remaining(TimerTwoFactorTTL),
		TwoFactorCooldown: m.timers.Remaining(TimerTwoFactorCooldown),
		ResetTTL:          m.timers.Remaining(TimerResetTTL),
		ForgotCooldown:    m.timers.Remaining(TimerForgotCooldown),
	}
}

// Restore восстанавливает сессию из сохраненного токена.
// Токен без читаемого sub удаляется, машина остается в Anonymous.
func (m *Machine) Restore(ctx context.Context) error {
	session, err := m.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	sub, err := subjectFromToken(session.Token)
	if err != nil {
		m.logger.Warn("discarding malformed session token", "error", err)
		if delErr := m.sessions.DeleteSession(ctx); delErr != nil && !errors.Is(delErr, storage.ErrSessionNotFound) {
			return fmt.Errorf("failed to discard session: %w", delErr)
		}
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Authenticated
	m.email = sub
	m.expired = false
	return nil
}

// Register регистрирует пользователя.
// Если сервер требует подтверждения email, машина ждет код, иначе сессия создается сразу.
func (m *Machine) Register(ctx context.Context, email, password string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	if err := validation.Required("password", password); err != nil {
		return err
	}
	email = strings.TrimSpace(email)

	if err := m.expect(Anonymous); err != nil {
		return err
	}

	resp, err := m.api.Register(ctx, pkgapi.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return &FlowError{Op: "Registration", Err: err}
	}

	if resp.RequiresVerification {
		m.mu.Lock()
		m.state = AwaitingEmailVerification
		m.email = email
		m.challengeID = resp.UserID
		m.message = MsgVerifyEmail
		m.mu.Unlock()
		return nil
	}

	return m.authenticate(ctx, email, resp.AccessToken)
}

// VerifyEmail подтверждает email кодом из письма
func (m *Machine) VerifyEmail(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)

	m.mu.Lock()
	if m.state != AwaitingEmailVerification {
		st := m.state
		m.mu.Unlock()
		return fmt.Errorf("%w: verify email in %s", ErrInvalidState, st)
	}
	if validation.ValidateCode(code) != nil {
		m.mu.Unlock()
		return ErrCodeRequired
	}
	userID, email := m.challengeID, m.email
	m.mu.Unlock()

	resp, err := m.api.VerifyEmail(ctx, pkgapi.VerifyCodeRequest{UserID: userID, Code: code})
	if err != nil {
		return &FlowError{Op: "Verification", Err: err}
	}

	return m.authenticate(ctx, email, resp.AccessToken)
}

// Login выполняет вход. Ответ 202 переводит машину в ожидание кода 2FA
// и запускает оба счетчика на ChallengeSeconds.
func (m *Machine) Login(ctx context.Context, email, password string) error {
	if err := validation.Required("email", email); err != nil {
		return err
	}
	if err := validation.Required("password", password); err != nil {
		return err
	}
	email = strings.TrimSpace(email)

	if err := m.expect(Anonymous); err != nil {
		return err
	}

	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return &FlowError{Op: "Login", Err: err}
	}

	if res.Challenge != nil {
		m.mu.Lock()
		m.state = AwaitingTwoFactor
		m.email = email
		m.password = password
		m.challengeID = res.Challenge.UserID
		m.message = MsgTwoFactorSent
		m.expired = false
		m.mu.Unlock()

		m.armTwoFactor()
		return nil
	}

	return m.authenticate(ctx, email, res.Token.AccessToken)
}

// ResendTwoFactor повторно запрашивает код 2FA.
// Пока идет пауза, ничего не делает и возвращает false без ошибки.
func (m *Machine) ResendTwoFactor(ctx context.Context) (bool, error) {
	m.mu.Lock()
	if m.state != AwaitingTwoFactor {
		st := m.state
		m.mu.Unlock()
		return false, fmt.Errorf("%w: resend 2FA code in %s", ErrInvalidState, st)
	}
	if m.timers.Remaining(TimerTwoFactorCooldown) > 0 {
		m.mu.Unlock()
		return false, nil
	}
	email, password := m.email, m.password
	m.mu.Unlock()

	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return false, &FlowError{Op: "Resending 2FA code", Err: err}
	}

	if res.Challenge == nil {
		// сервер выдал токен сразу, второй фактор больше не нужен
		return true, m.authenticate(ctx, email, res.Token.AccessToken)
	}

	m.mu.Lock()
	if res.Challenge.UserID != "" {
		m.challengeID = res.Challenge.UserID
	}
	m.message = MsgTwoFactorResent
	m.mu.Unlock()

	m.armTwoFactor()
	return true, nil
}

// VerifyTwoFactor подтверждает вход кодом 2FA
func (m *Machine) VerifyTwoFactor(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)

	m.mu.Lock()
	if m.state != AwaitingTwoFactor {
		st := m.state
		m.mu.Unlock()
		return fmt.Errorf("%w: verify 2FA code in %s", ErrInvalidState, st)
	}
	if validation.ValidateCode(code) != nil {
		m.message = MsgTwoFactorRequired
		m.mu.Unlock()
		return ErrCodeRequired
	}
	userID, email := m.challengeID, m.email
	m.mu.Unlock()

	resp, err := m.api.VerifyTwoFactor(ctx, pkgapi.VerifyCodeRequest{UserID: userID, Code: code})
	if err != nil {
		msg := MsgTwoFactorFailed
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			msg = apiErr.Detail
		}

		m.mu.Lock()
		if m.state == AwaitingTwoFactor {
			m.message = msg
		}
		m.mu.Unlock()
		return &FlowError{Op: "2FA verification", Message: msg, Err: err}
	}

	return m.authenticate(ctx, email, resp.AccessToken)
}

// CancelChallenge возвращает к форме входа из ожидания кода
func (m *Machine) CancelChallenge() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != AwaitingTwoFactor && m.state != AwaitingEmailVerification {
		return fmt.Errorf("%w: cancel challenge in %s", ErrInvalidState, m.state)
	}

	m.timers.Clear(TimerTwoFactorTTL, TimerTwoFactorCooldown)
	m.toAnonymousLocked("")
	return nil
}

// StartForgotPassword открывает процесс сброса пароля. email может быть пустым.
func (m *Machine) StartForgotPassword(email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Anonymous {
		return fmt.Errorf("%w: forgot password in %s", ErrInvalidState, m.state)
	}

	m.state = ForgotPassword
	m.email = strings.TrimSpace(email)
	m.message = ""
	return nil
}

// RequestReset запрашивает код сброса на email.
// Пустой email или активная пауза: ничего не делает, возвращает false.
// Успех не зависит от того, зарегистрирован ли email.
func (m *Machine) RequestReset(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	if m.state != ForgotPassword && m.state != ResetPassword {
		st := m.state
		m.mu.Unlock()
		return false, fmt.Errorf("%w: request reset in %s", ErrInvalidState, st)
	}
	if e := strings.TrimSpace(email); e != "" {
		m.email = e
	}
	email = m.email
	if email == "" || m.timers.Remaining(TimerForgotCooldown) > 0 {
		m.mu.Unlock()
		return false, nil
	}
	m.mu.Unlock()

	if err := m.api.ForgotPassword(ctx, email); err != nil {
		msg := "Error requesting password reset: " + api.Detail(err)
		m.setMessage(msg)
		return false, &FlowError{Op: "Password reset request", Message: msg, Err: err}
	}

	m.mu.Lock()
	m.state = ResetPassword
	m.message = MsgResetSent
	m.mu.Unlock()

	m.timers.Arm(map[string]int{
		TimerResetTTL:       ResetSeconds,
		TimerForgotCooldown: ResetSeconds,
	})
	return true, nil
}

// SubmitReset устанавливает новый пароль по коду из письма
func (m *Machine) SubmitReset(ctx context.Context, code, newPassword string) error {
	code = strings.TrimSpace(code)

	m.mu.Lock()
	if m.state != ResetPassword {
		st := m.state
		m.mu.Unlock()
		return fmt.Errorf("%w: submit reset in %s", ErrInvalidState, st)
	}
	if m.timers.Remaining(TimerResetTTL) == 0 {
		m.mu.Unlock()
		return ErrResetCodeExpired
	}
	email := m.email
	m.mu.Unlock()

	if validation.ValidateCode(code) != nil {
		return ErrCodeRequired
	}
	if err := validation.Required("new password", newPassword); err != nil {
		return err
	}

	err := m.api.ResetPassword(ctx, pkgapi.ResetPasswordRequest{Email: email, Code: code, NewPassword: newPassword})
	if err != nil {
		msg := "Error resetting password: " + api.Detail(err)
		m.setMessage(msg)
		return &FlowError{Op: "Password reset", Message: msg, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.timers.Clear(TimerResetTTL, TimerForgotCooldown)
	m.toAnonymousLocked(MsgPasswordReset)
	return nil
}

// BackToForgot возвращает с ввода кода на ввод email. Счетчики продолжают идти.
func (m *Machine) BackToForgot() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != ResetPassword {
		return fmt.Errorf("%w: back in %s", ErrInvalidState, m.state)
	}
	m.state = ForgotPassword
	m.message = ""
	return nil
}

// ExitPasswordReset выходит из процесса сброса к форме входа
func (m *Machine) ExitPasswordReset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != ForgotPassword && m.state != ResetPassword {
		return fmt.Errorf("%w: exit password reset in %s", ErrInvalidState, m.state)
	}
	m.timers.Clear(TimerResetTTL, TimerForgotCooldown)
	m.toAnonymousLocked("")
	return nil
}

// Logout завершает сессию и удаляет токен
func (m *Machine) Logout(ctx context.Context) error {
	if err := m.expect(Authenticated); err != nil {
		return err
	}

	if err := m.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.toAnonymousLocked("")
	return nil
}

// SessionExpired обработчик 401 для api.Client.SetOnUnauthorized.
// Токен к этому моменту уже удален клиентом.
func (m *Machine) SessionExpired(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wasAuthenticated := m.state == Authenticated
	m.logger.Debug("unauthorized response observed", "state", m.state.String(), "error", err)

	m.timers.Clear()
	m.toAnonymousLocked("")
	if wasAuthenticated {
		m.expired = true
		m.message = MsgSessionExpired
	}
}

// Close останавливает счетчики
func (m *Machine) Close() {
	m.timers.Clear()
	m.timers.Stop()
}

func (m *Machine) expect(want State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != want {
		return fmt.Errorf("%w: want %s, have %s", ErrInvalidState, want, m.state)
	}
	return nil
}

func (m *Machine) setMessage(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.message = msg
}

func (m *Machine) armTwoFactor() {
	m.timers.Arm(map[string]int{
		TimerTwoFactorTTL:      ChallengeSeconds,
		TimerTwoFactorCooldown: ChallengeSeconds,
	})
}

// authenticate сохраняет токен и переводит машину в Authenticated
func (m *Machine) authenticate(ctx context.Context, email, token string) error {
	if token == "" {
		return errors.New("server returned empty access token")
	}

	err := m.sessions.SaveSession(ctx, &storage.SessionData{
		Token:   token,
		Email:   email,
		SavedAt: time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.timers.Clear(TimerTwoFactorTTL, TimerTwoFactorCooldown)
	m.state = Authenticated
	m.email = email
	m.password = ""
	m.challengeID = ""
	m.message = ""
	m.expired = false
	return nil
}

func (m *Machine) toAnonymousLocked(message string) {
	m.state = Anonymous
	m.email = ""
	m.password = ""
	m.challengeID = ""
	m.message = message
	m.expired = false
}
