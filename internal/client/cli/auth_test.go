package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/secureshare/internal/client/auth"
	"github.com/iudanet/secureshare/internal/client/storage"
	"github.com/iudanet/secureshare/internal/validation"
)

func TestRun_UnknownCommand(t *testing.T) {
	h := newHarness(t)

	err := h.cli.Run(context.Background(), "sync", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: sync")
	assert.Contains(t, h.io.Output(), "Usage:")
}

func TestLogin_Success(t *testing.T) {
	h := newHarness(t)
	h.input("user@example.com", goodPassword)

	require.NoError(t, h.cli.Run(context.Background(), "login", nil))

	assert.Equal(t, auth.Authenticated, h.machine.State())
	assert.Contains(t, h.io.Output(), "✓ Login successful!")
	assert.Contains(t, h.io.Output(), "Signed in as: user@example.com")

	session, err := h.sessions.GetSession(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
}

func TestLogin_AlreadyAuthenticated(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, "user@example.com")

	require.NoError(t, h.cli.Run(context.Background(), "login", nil))
	assert.Contains(t, h.io.Output(), "Already logged in as user@example.com")
	assert.Zero(t, h.backend.tokenCalls)
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newHarness(t)
	h.input("user@example.com", "wrong")

	err := h.cli.Run(context.Background(), "login", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.Contains(t, err.Error(), "Incorrect email or password")
	assert.Equal(t, auth.Anonymous, h.machine.State())
}

func TestLogin_TwoFactor(t *testing.T) {
	h := newHarness(t)
	h.input("2fa@example.com", twoFAPassword, "resend", "000000", twoFACode)

	require.NoError(t, h.cli.Run(context.Background(), "login", nil))

	out := h.io.Output()
	assert.Contains(t, out, auth.MsgTwoFactorSent)
	assert.Contains(t, out, "Code expires in 60s. Resend available in 60s.")
	assert.Contains(t, out, "Please wait 60 seconds before requesting a new code.")
	assert.Contains(t, out, "Invalid 2FA code")
	assert.Contains(t, out, "✓ Login successful!")

	// повторная отправка во время паузы не обращается к серверу
	assert.Equal(t, 1, h.backend.tokenCalls)
	assert.Equal(t, auth.Authenticated, h.machine.State())
}

func TestLogin_TwoFactorCancel(t *testing.T) {
	h := newHarness(t)
	h.input("2fa@example.com", twoFAPassword, "cancel")

	require.NoError(t, h.cli.Run(context.Background(), "login", nil))

	assert.Contains(t, h.io.Output(), "Login cancelled.")
	assert.NotContains(t, h.io.Output(), "Login successful")
	assert.Equal(t, auth.Anonymous, h.machine.State())
}

func TestLogin_InputEnds(t *testing.T) {
	h := newHarness(t)
	h.input("2fa@example.com", twoFAPassword)

	err := h.cli.Run(context.Background(), "login", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read code")
}

func TestRegister_WithVerification(t *testing.T) {
	h := newHarness(t)
	h.input("new@example.com", "password1", "password1", "000000", emailCode)

	require.NoError(t, h.cli.Run(context.Background(), "register", nil))

	out := h.io.Output()
	assert.Contains(t, out, auth.MsgVerifyEmail)
	assert.Contains(t, out, "Invalid verification code")
	assert.Contains(t, out, "✓ Registration successful!")
	assert.Equal(t, auth.Authenticated, h.machine.State())
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name   string
		inputs []string
	}{
		{name: "passwords differ", inputs: []string{"new@example.com", "password1", "password2"}},
		{name: "invalid email", inputs: []string{"not-an-email", "password1", "password1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.input(tt.inputs...)

			err := h.cli.Run(context.Background(), "register", nil)
			assert.ErrorIs(t, err, validation.ErrValidation)
			assert.Equal(t, auth.Anonymous, h.machine.State())
		})
	}
}

func TestForgotPassword(t *testing.T) {
	h := newHarness(t)
	h.input("user@example.com", "999999", "newpassword1", resetCode, "newpassword1")

	require.NoError(t, h.cli.Run(context.Background(), "forgot-password", nil))

	out := h.io.Output()
	assert.Contains(t, out, auth.MsgResetSent)
	assert.Contains(t, out, "Code expires in 60s.")
	assert.Contains(t, out, "Error resetting password: Invalid reset code")
	assert.Contains(t, out, "✓ "+auth.MsgPasswordReset)
	assert.Equal(t, auth.Anonymous, h.machine.State())

	require.Len(t, h.backend.resets, 2)
	assert.Equal(t, "user@example.com", h.backend.resets[1].Email)
	assert.Equal(t, "newpassword1", h.backend.resets[1].NewPassword)
}

func TestForgotPassword_BackAndQuit(t *testing.T) {
	h := newHarness(t)
	h.input("user@example.com", "back", "", "quit")

	require.NoError(t, h.cli.Run(context.Background(), "forgot-password", nil))

	out := h.io.Output()
	assert.Contains(t, out, "Email [user@example.com]")
	assert.Contains(t, out, "Please wait 60 seconds before requesting another code.")
	assert.Equal(t, auth.Anonymous, h.machine.State())
	assert.Empty(t, h.backend.resets)
}

func TestStatus(t *testing.T) {
	t.Run("not authenticated", func(t *testing.T) {
		h := newHarness(t)
		require.NoError(t, h.cli.Run(context.Background(), "status", nil))
		assert.Contains(t, h.io.Output(), "Status: Not authenticated")
	})

	t.Run("authenticated", func(t *testing.T) {
		h := newHarness(t)
		h.signIn(t, "user@example.com")

		require.NoError(t, h.cli.Run(context.Background(), "status", nil))
		out := h.io.Output()
		assert.Contains(t, out, "Status: Authenticated")
		assert.Contains(t, out, "Email: user@example.com")
		assert.Contains(t, out, "Two-factor authentication: disabled")
	})
}

func TestLogout(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.cli.Run(context.Background(), "logout", nil), ErrNotAuthenticated)

	h.signIn(t, "user@example.com")
	require.NoError(t, h.cli.Run(context.Background(), "logout", nil))

	assert.Contains(t, h.io.Output(), "✓ Logged out user@example.com")
	assert.Equal(t, auth.Anonymous, h.machine.State())
	_, err := h.sessions.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestRun_SessionExpired(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, "user@example.com")
	h.backend.expired = true

	err := h.cli.Run(context.Background(), "files", nil)
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, "session expired, please login again", err.Error())

	snap := h.machine.Snapshot()
	assert.Equal(t, auth.Anonymous, snap.State)
	assert.True(t, snap.Expired)

	_, err = h.sessions.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}
