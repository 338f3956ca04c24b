package security

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/secureshare/internal/client/api"
	"github.com/iudanet/secureshare/internal/validation"
	pkgapi "github.com/iudanet/secureshare/pkg/api"
)

// newToggleAPI мок сервера, который хранит включенность 2FA
func newToggleAPI(enabled bool) *APIMock {
	m := &APIMock{}
	m.TwoFactorStatusFunc = func(context.Context) (bool, error) {
		return enabled, nil
	}
	m.EnableTwoFactorFunc = func(context.Context) (*pkgapi.TwoFactorToggleResponse, error) {
		enabled = true
		return &pkgapi.TwoFactorToggleResponse{Enabled: true, Message: "2FA enabled"}, nil
	}
	m.DisableTwoFactorFunc = func(context.Context) (*pkgapi.TwoFactorToggleResponse, error) {
		enabled = false
		return &pkgapi.TwoFactorToggleResponse{Enabled: false, Message: "2FA disabled"}, nil
	}
	return m
}

func TestService_Toggle(t *testing.T) {
	m := newToggleAPI(false)
	s := NewService(m, nil)
	ctx := context.Background()

	res, err := s.Toggle(ctx)
	require.NoError(t, err)
	assert.True(t, res.Enabled)
	assert.Equal(t, "2FA enabled", res.Message)

	res, err = s.Toggle(ctx)
	require.NoError(t, err)
	assert.False(t, res.Enabled)

	on, err := s.Status(ctx)
	require.NoError(t, err)
	assert.False(t, on)

	// Toggle узнает текущее состояние у сервера перед каждым переключением
	assert.Len(t, m.TwoFactorStatusCalls(), 3)
	assert.Len(t, m.EnableTwoFactorCalls(), 1)
	assert.Len(t, m.DisableTwoFactorCalls(), 1)
}

func TestService_ToggleFailureRefetchesStatus(t *testing.T) {
	m := &APIMock{
		TwoFactorStatusFunc: func(context.Context) (bool, error) { return true, nil },
		DisableTwoFactorFunc: func(context.Context) (*pkgapi.TwoFactorToggleResponse, error) {
			return nil, &api.Error{StatusCode: http.StatusBadRequest, Detail: "Email not verified"}
		},
	}
	s := NewService(m, nil)

	res, err := s.Disable(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, api.StatusCode(err))
	require.NotNil(t, res)
	assert.True(t, res.Enabled, "status re-read from server")
	assert.Contains(t, res.Message, "Email not verified")
	assert.Len(t, m.TwoFactorStatusCalls(), 1)
}

func TestService_ChangePassword(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		confirm string
		errMsg  string
	}{
		{name: "missing current", current: "", next: "newpassword", confirm: "newpassword", errMsg: "current password cannot be empty"},
		{name: "mismatch", current: "old", next: "newpassword", confirm: "newpassw0rd", errMsg: "New password and confirmation do not match"},
		{name: "too short", current: "old", next: "short", confirm: "short", errMsg: "Password must be at least 8 characters"},
		{name: "ok", current: "old", next: "newpassword", confirm: "newpassword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &APIMock{
				ChangePasswordFunc: func(context.Context, pkgapi.ChangePasswordRequest) error { return nil },
			}
			s := NewService(m, nil)

			err := s.ChangePassword(context.Background(), tt.current, tt.next, tt.confirm)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, validation.ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Empty(t, m.ChangePasswordCalls(), "no request on validation error")
				return
			}

			require.NoError(t, err)
			calls := m.ChangePasswordCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, pkgapi.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "newpassword"}, calls[0].Req)
		})
	}
}

func TestService_ChangePasswordBackendError(t *testing.T) {
	m := &APIMock{
		ChangePasswordFunc: func(context.Context, pkgapi.ChangePasswordRequest) error {
			return &api.Error{StatusCode: http.StatusBadRequest, Detail: "Current password is incorrect"}
		},
	}
	s := NewService(m, nil)

	err := s.ChangePassword(context.Background(), "wrong", "newpassword", "newpassword")
	require.Error(t, err)
	assert.Equal(t, "Current password is incorrect", api.Detail(err))
}
