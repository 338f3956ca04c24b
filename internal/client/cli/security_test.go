package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/secureshare/internal/validation"
)

func TestTwoFactorCommand(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.cli.Run(context.Background(), "2fa", nil), ErrNotAuthenticated)

	h.signIn(t, "user@example.com")
	ctx := context.Background()

	require.NoError(t, h.cli.Run(ctx, "2fa", nil))
	assert.Contains(t, h.io.Output(), "Two-factor authentication: disabled")

	require.NoError(t, h.cli.Run(ctx, "2fa", []string{"enable"}))
	assert.Contains(t, h.io.Output(), "2FA settings updated")
	assert.Contains(t, h.io.Output(), "Two-factor authentication: enabled")
	assert.True(t, h.backend.twoFA)

	require.NoError(t, h.cli.Run(ctx, "2fa", []string{"toggle"}))
	assert.False(t, h.backend.twoFA)

	err := h.cli.Run(ctx, "2fa", []string{"maybe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown 2fa action")
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name      string
		inputs    []string
		wantErr   error
		errText   string
		wantCalls int
	}{
		{name: "success", inputs: []string{currentPassword, "newpass123", "newpass123"}, wantCalls: 1},
		{name: "mismatch", inputs: []string{currentPassword, "newpass123", "newpass124"}, wantErr: validation.ErrValidation},
		{name: "too short", inputs: []string{currentPassword, "short", "short"}, wantErr: validation.ErrValidation},
		{name: "wrong current", inputs: []string{"nope", "newpass123", "newpass123"}, errText: "Current password is incorrect", wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.signIn(t, "user@example.com")
			h.input(tt.inputs...)

			err := h.cli.Run(context.Background(), "change-password", nil)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			default:
				require.NoError(t, err)
				assert.Contains(t, h.io.Output(), "✓ Password changed successfully")
			}
			assert.Len(t, h.backend.passwords, tt.wantCalls)
		})
	}
}
