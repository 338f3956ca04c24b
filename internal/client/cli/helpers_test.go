package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/secureshare/internal/client/api"
	"github.com/iudanet/secureshare/internal/client/auth"
	"github.com/iudanet/secureshare/internal/client/countdown"
	"github.com/iudanet/secureshare/internal/client/files"
	"github.com/iudanet/secureshare/internal/client/security"
	"github.com/iudanet/secureshare/internal/client/sharing"
	"github.com/iudanet/secureshare/internal/client/storage"
	"github.com/iudanet/secureshare/internal/client/storage/boltdb"
	"github.com/iudanet/secureshare/internal/client/storage/sqlite"
	"github.com/iudanet/secureshare/internal/logging"
	pkgapi "github.com/iudanet/secureshare/pkg/api"
)

// Пароли и коды, которые принимает тестовый сервер
const (
	goodPassword    = "good-password"
	twoFAPassword   = "2fa-password"
	twoFACode       = "123456"
	emailCode       = "111111"
	resetCode       = "222222"
	currentPassword = "current-pass"
)

// scriptIO IO с заранее заданным вводом. Когда ввод кончается, возвращает io.EOF.
type scriptIO struct {
	mu     sync.Mutex
	inputs []string
	out    bytes.Buffer
}

func (s *scriptIO) Println(a ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(&s.out, a...)
}

func (s *scriptIO) Printf(format string, a ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(&s.out, format, a...)
}

func (s *scriptIO) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.Write(p)
}

func (s *scriptIO) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	in := s.inputs[0]
	s.inputs = s.inputs[1:]
	_, _ = fmt.Fprintln(&s.out, in)
	return strings.TrimSpace(in), nil
}

func (s *scriptIO) ReadPassword(prompt string) (string, error) {
	return s.ReadInput(prompt)
}

func (s *scriptIO) Output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

// backend тестовый сервер SecureShare
type backend struct {
	mu          sync.Mutex
	files       []pkgapi.FileInfo
	twoFA       bool
	expired     bool // все авторизованные запросы получают 401
	tokenCalls  int
	listQueries []url.Values
	shareBodies []pkgapi.ShareRequest
	uploadDays  []string
	resets      []pkgapi.ResetPasswordRequest
	passwords   []pkgapi.ChangePasswordRequest
}

func signToken(t *testing.T, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: email})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func detail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

func (b *backend) addFiles(n int, name, contentType string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		b.files = append(b.files, pkgapi.FileInfo{
			ID:          uuid.New(),
			Filename:    fmt.Sprintf("%s-%02d", name, len(b.files)+1),
			ContentType: contentType,
			Size:        2048,
			CreatedAt:   base.Add(time.Duration(len(b.files)) * time.Hour),
		})
	}
}

func (b *backend) lastQuery() url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.listQueries) == 0 {
		return nil
	}
	return b.listQueries[len(b.listQueries)-1]
}

func (b *backend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	authorized := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			expired := b.expired
			b.mu.Unlock()
			if expired || !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
				detail(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.tokenCalls++
		b.mu.Unlock()

		switch r.FormValue("password") {
		case goodPassword:
			writeJSON(w, http.StatusOK, pkgapi.TokenResponse{AccessToken: signToken(t, r.FormValue("username")), TokenType: "bearer"})
		case twoFAPassword:
			writeJSON(w, http.StatusAccepted, pkgapi.TwoFactorChallenge{UserID: "user-2fa", Message: "2FA code sent"})
		default:
			detail(w, http.StatusUnauthorized, "Incorrect email or password")
		}
	})
	mux.HandleFunc("POST /verify-2fa", func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.VerifyCodeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Code != twoFACode || req.UserID != "user-2fa" {
			detail(w, http.StatusBadRequest, "Invalid 2FA code")
			return
		}
		writeJSON(w, http.StatusOK, pkgapi.TokenResponse{AccessToken: signToken(t, "2fa@example.com")})
	})
	mux.HandleFunc("POST /register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, pkgapi.RegisterResponse{UserID: "user-new", RequiresVerification: true})
	})
	mux.HandleFunc("POST /verify-email", func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.VerifyCodeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Code != emailCode {
			detail(w, http.StatusBadRequest, "Invalid verification code")
			return
		}
		writeJSON(w, http.StatusOK, pkgapi.TokenResponse{AccessToken: signToken(t, "new@example.com")})
	})
	mux.HandleFunc("POST /forgot-password", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, pkgapi.MessageResponse{Message: "sent"})
	})
	mux.HandleFunc("POST /reset-password", func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.ResetPasswordRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.mu.Lock()
		b.resets = append(b.resets, req)
		b.mu.Unlock()
		if req.Code != resetCode {
			detail(w, http.StatusBadRequest, "Invalid reset code")
			return
		}
		writeJSON(w, http.StatusOK, pkgapi.MessageResponse{Message: "ok"})
	})

	mux.HandleFunc("GET /2fa-status", authorized(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, pkgapi.TwoFactorStatusResponse{TwoFactorEnabled: b.twoFA})
	}))
	toggle := func(enable bool) http.HandlerFunc {
		return authorized(func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			b.twoFA = enable
			writeJSON(w, http.StatusOK, pkgapi.TwoFactorToggleResponse{Enabled: enable, Message: "2FA settings updated"})
		})
	}
	mux.HandleFunc("POST /enable-2fa", toggle(true))
	mux.HandleFunc("POST /disable-2fa", toggle(false))
	mux.HandleFunc("POST /change-password", authorized(func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.ChangePasswordRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.mu.Lock()
		b.passwords = append(b.passwords, req)
		b.mu.Unlock()
		if req.CurrentPassword != currentPassword {
			detail(w, http.StatusBadRequest, "Current password is incorrect")
			return
		}
		writeJSON(w, http.StatusOK, pkgapi.MessageResponse{Message: "ok"})
	}))

	mux.HandleFunc("GET /files", authorized(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		skip, _ := strconv.Atoi(q.Get("skip"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		b.mu.Lock()
		defer b.mu.Unlock()
		b.listQueries = append(b.listQueries, q)

		var matched []pkgapi.FileInfo
		for _, f := range b.files {
			if s := q.Get("search"); s != "" && !strings.Contains(f.Filename, s) {
				continue
			}
			if ft := q.Get("file_type"); ft != "" && f.ContentType != ft {
				continue
			}
			matched = append(matched, f)
		}

		page := []pkgapi.FileInfo{}
		if skip < len(matched) {
			page = matched[skip:min(skip+limit, len(matched))]
		}
		writeJSON(w, http.StatusOK, pkgapi.FileListResponse{Files: page, Total: len(matched), Skip: skip, Limit: limit})
	}))
	mux.HandleFunc("POST /upload", authorized(func(w http.ResponseWriter, r *http.Request) {
		f, header, err := r.FormFile("file")
		if err != nil {
			detail(w, http.StatusBadRequest, "file is required")
			return
		}
		data, _ := io.ReadAll(f)
		info := pkgapi.FileInfo{
			ID:          uuid.New(),
			Filename:    header.Filename,
			ContentType: "text/plain",
			Size:        int64(len(data)),
			CreatedAt:   time.Now().UTC(),
		}

		b.mu.Lock()
		b.files = append(b.files, info)
		b.uploadDays = append(b.uploadDays, r.URL.Query().Get("expire_days"))
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, info)
	}))
	mux.HandleFunc("POST /share/{id}", authorized(func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.ShareRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.mu.Lock()
		b.shareBodies = append(b.shareBodies, req)
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, pkgapi.ShareResponse{Token: "tok-" + r.PathValue("id")[:8]})
	}))
	mux.HandleFunc("DELETE /files/{id}", authorized(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, f := range b.files {
			if f.ID.String() == r.PathValue("id") {
				b.files = append(b.files[:i], b.files[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		detail(w, http.StatusForbidden, "Not your file")
	}))

	return mux
}

// harness собранный клиент поверх тестового сервера
type harness struct {
	cli      *Cli
	io       *scriptIO
	backend  *backend
	machine  *auth.Machine
	engine   *files.Engine
	sessions *boltdb.Storage
	links    *sqlite.Storage
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()

	b := &backend{}
	server := httptest.NewServer(b.handler(t))
	t.Cleanup(server.Close)

	logger, err := logging.New(io.Discard, "debug")
	require.NoError(t, err)

	sessions, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sessions.Close() })

	links, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = links.Close() })

	client, err := api.NewClient(api.Config{Origin: "https://share.example.com", APIBaseURL: server.URL}, sessions, logger)
	require.NoError(t, err)

	// счетчики идут только при ручном Tick
	machine := auth.NewMachine(client, sessions, countdown.New(time.Hour), logger)
	t.Cleanup(machine.Close)
	client.SetOnUnauthorized(machine.SessionExpired)

	resolver, err := sharing.NewResolver(client, client.BaseURL(), client.Origin())
	require.NoError(t, err)

	h := &harness{io: &scriptIO{}, backend: b, machine: machine, sessions: sessions, links: links}

	h.engine = files.NewEngine(client, resolver, files.Options{
		Logger:   logger,
		Links:    links,
		Debounce: 10 * time.Millisecond,
		OnChange: func(s files.State) { h.cli.OnFilesChange(s) },
	})
	t.Cleanup(h.engine.Close)

	h.cli = New(Deps{
		IO:       h.io,
		Auth:     machine,
		Files:    h.engine,
		Security: security.NewService(client, logger),
		Logger:   logger,
		Wait:     5 * time.Second,
	})
	return h
}

// signIn сохраняет токен так, как это делает успешный вход, и восстанавливает сессию
func (h *harness) signIn(t *testing.T, email string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, h.sessions.SaveSession(ctx, &storage.SessionData{Token: signToken(t, email), Email: email}))
	require.NoError(t, h.machine.Restore(ctx))
	require.Equal(t, auth.Authenticated, h.machine.State())
}

func (h *harness) input(lines ...string) {
	h.io.mu.Lock()
	defer h.io.mu.Unlock()
	h.io.inputs = append(h.io.inputs, lines...)
}
