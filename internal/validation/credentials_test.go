package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		errMsg  string
		wantErr bool
	}{
		{
			name:    "valid email",
			email:   "alice@example.com",
			wantErr: false,
		},
		{
			name:    "valid email with surrounding spaces",
			email:   "  alice@example.com ",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			email:   "",
			wantErr: true,
			errMsg:  "email cannot be empty",
		},
		{
			name:    "invalid - only spaces",
			email:   "   ",
			wantErr: true,
			errMsg:  "email cannot be empty",
		},
		{
			name:    "invalid - no at sign",
			email:   "alice.example.com",
			wantErr: true,
			errMsg:  "invalid email address",
		},
		{
			name:    "invalid - display name form",
			email:   "Alice <alice@example.com>",
			wantErr: true,
			errMsg:  "invalid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateNewPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		errMsg   string
		wantErr  bool
	}{
		{
			name:     "valid password",
			password: "supersecret",
			confirm:  "supersecret",
		},
		{
			name:     "exactly min length",
			password: "12345678",
			confirm:  "12345678",
		},
		{
			name:     "empty password",
			password: "",
			confirm:  "",
			wantErr:  true,
			errMsg:   "cannot be empty",
		},
		{
			name:     "mismatch is reported before length",
			password: "short",
			confirm:  "other",
			wantErr:  true,
			errMsg:   "do not match",
		},
		{
			name:     "too short",
			password: "1234567",
			confirm:  "1234567",
			wantErr:  true,
			errMsg:   "at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNewPassword(tt.password, tt.confirm)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequiredAndValidateCode(t *testing.T) {
	assert.NoError(t, Required("password", "x"))
	assert.ErrorIs(t, Required("password", " \t"), ErrValidation)

	assert.NoError(t, ValidateCode("123456"))

	err := ValidateCode("   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code cannot be empty")
}

func TestParseMaxViews(t *testing.T) {
	v, err := ParseMaxViews("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseMaxViews(" 5 ")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 5, *v)

	for _, bad := range []string{"abc", "0", "-2", "1.5"} {
		_, err := ParseMaxViews(bad)
		assert.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("from", ""))
	assert.NoError(t, ValidateDate("from", "2024-02-29"))

	err := ValidateDate("from", "29.02.2024")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "from must be a date")

	assert.Error(t, ValidateDate("to", "2023-02-30"))
}
