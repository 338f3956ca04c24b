package sharing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/secureshare/internal/models"
	"github.com/iudanet/secureshare/internal/validation"
	pkgapi "github.com/iudanet/secureshare/pkg/api"
)

type fakeShareAPI struct {
	err      error
	body     string
	requests []pkgapi.ShareRequest
	ids      []uuid.UUID
}

func (f *fakeShareAPI) CreateShareLink(_ context.Context, id uuid.UUID, req pkgapi.ShareRequest) ([]byte, error) {
	f.ids = append(f.ids, id)
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.body), nil
}

func TestEnsureShareLink_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		baseURL string
		origin  string
		want    string
		wantErr bool
	}{
		{name: "url field", body: `{"url":"https://x/y"}`, baseURL: "/api", origin: "https://share.example.com", want: "https://x/y"},
		{name: "raw json string", body: `"https://x/y"`, baseURL: "/api", origin: "https://share.example.com", want: "https://x/y"},
		{name: "raw plain text", body: "https://x/y\n", baseURL: "/api", origin: "https://share.example.com", want: "https://x/y"},
		{name: "share_url field", body: `{"share_url":"https://x/s/t1","token":"t1"}`, baseURL: "/api", origin: "https://share.example.com", want: "https://x/s/t1"},
		{name: "token against origin", body: `{"token":"abc"}`, baseURL: "/api", origin: "https://share.example.com", want: "https://share.example.com/s/abc"},
		{name: "token against absolute api base", body: `{"token":"abc"}`, baseURL: "http://localhost:8000", origin: "http://localhost:3000", want: "http://localhost:8000/s/abc"},
		{name: "relative url", body: `{"url":"/s/zzz"}`, baseURL: "https://api.example.com", origin: "https://share.example.com", want: "https://api.example.com/s/zzz"},
		{name: "empty object", body: `{}`, baseURL: "/api", origin: "https://share.example.com", wantErr: true},
		{name: "empty body", body: ``, baseURL: "/api", origin: "https://share.example.com", wantErr: true},
		{name: "array", body: `["https://x/y"]`, baseURL: "/api", origin: "https://share.example.com", wantErr: true},
		{name: "blank string", body: `"  "`, baseURL: "/api", origin: "https://share.example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeShareAPI{body: tt.body}
			r, err := NewResolver(fake, tt.baseURL, tt.origin)
			require.NoError(t, err)

			got, err := r.EnsureShareLink(context.Background(), uuid.New(), models.DefaultShareSettings())
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnexpectedShape)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsureShareLink_Payload(t *testing.T) {
	fake := &fakeShareAPI{body: `{"token":"abc"}`}
	r, err := NewResolver(fake, "/api", "https://share.example.com")
	require.NoError(t, err)

	id := uuid.New()
	_, err = r.EnsureShareLink(context.Background(), id, models.ShareSettings{ExpireDays: 3, MaxViews: "", ReuseExisting: false})
	require.NoError(t, err)

	_, err = r.EnsureShareLink(context.Background(), id, models.ShareSettings{ExpireDays: 1, MaxViews: "10", ReuseExisting: true})
	require.NoError(t, err)

	require.Len(t, fake.requests, 2)
	assert.Equal(t, []uuid.UUID{id, id}, fake.ids)

	assert.Nil(t, fake.requests[0].MaxViews)
	assert.Equal(t, 3, fake.requests[0].ExpireDays)
	assert.False(t, fake.requests[0].ReuseExisting)

	require.NotNil(t, fake.requests[1].MaxViews)
	assert.Equal(t, 10, *fake.requests[1].MaxViews)
	assert.True(t, fake.requests[1].ReuseExisting)
}

func TestEnsureShareLink_InvalidMaxViews(t *testing.T) {
	fake := &fakeShareAPI{body: `{"token":"abc"}`}
	r, err := NewResolver(fake, "/api", "https://share.example.com")
	require.NoError(t, err)

	_, err = r.EnsureShareLink(context.Background(), uuid.New(), models.ShareSettings{ExpireDays: 7, MaxViews: "many"})
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrValidation)
	assert.Empty(t, fake.requests, "no request on validation error")
}

func TestEnsureShareLink_APIError(t *testing.T) {
	apiErr := errors.New("server error (403): Access denied")
	r, err := NewResolver(&fakeShareAPI{err: apiErr}, "/api", "https://share.example.com")
	require.NoError(t, err)

	_, err = r.EnsureShareLink(context.Background(), uuid.New(), models.DefaultShareSettings())
	assert.ErrorIs(t, err, apiErr)
}

func TestEnsureShareLink_NoAbsoluteBase(t *testing.T) {
	r, err := NewResolver(&fakeShareAPI{body: `{"token":"abc"}`}, "/api", "")
	require.NoError(t, err)

	_, err = r.EnsureShareLink(context.Background(), uuid.New(), models.DefaultShareSettings())
	require.Error(t, err)
}
