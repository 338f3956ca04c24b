// Package cli команды клиента SecureShare
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/secureshare/internal/client/auth"
	"github.com/iudanet/secureshare/internal/client/files"
	"github.com/iudanet/secureshare/internal/client/iocli"
	"github.com/iudanet/secureshare/internal/client/security"
	"github.com/iudanet/secureshare/internal/models"
	"github.com/iudanet/secureshare/internal/validation"
)

// DefaultWait сколько browse ждет результата отложенного запроса
const DefaultWait = 30 * time.Second

var (
	// ErrNotAuthenticated команда требует входа
	ErrNotAuthenticated = errors.New("not authenticated. Please run 'secureshare login' first")
	// ErrSessionExpired сервер ответил 401 на запрос авторизованной сессии
	ErrSessionExpired = errors.New(auth.MsgSessionExpired)
)

// Deps компоненты, с которыми работают команды
type Deps struct {
	IO       iocli.IO
	Auth     *auth.Machine
	Files    *files.Engine
	Security *security.Service
	Logger   *slog.Logger
	Share    models.ShareSettings // параметры ссылок по умолчанию
	Wait     time.Duration
}

// Cli выполняет команды поверх машины аутентификации и движка файлов
type Cli struct {
	io       iocli.IO
	auth     *auth.Machine
	files    *files.Engine
	security *security.Service
	logger   *slog.Logger
	share    models.ShareSettings
	wait     time.Duration

	updates chan files.State
}

// New создает Cli
func New(d Deps) *Cli {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Wait <= 0 {
		d.Wait = DefaultWait
	}
	if d.Share.ExpireDays == 0 {
		d.Share = models.DefaultShareSettings()
	}
	return &Cli{
		io:       d.IO,
		auth:     d.Auth,
		files:    d.Files,
		security: d.Security,
		logger:   d.Logger,
		share:    d.Share,
		wait:     d.Wait,
		updates:  make(chan files.State, 1),
	}
}

// OnFilesChange принимает состояния движка (files.Options.OnChange).
// Хранится только последнее непрочитанное состояние.
func (c *Cli) OnFilesChange(state files.State) {
	for {
		select {
		case c.updates <- state:
			return
		default:
		}
		select {
		case <-c.updates:
		default:
		}
	}
}

func (c *Cli) requireAuth() error {
	if c.auth.State() != auth.Authenticated {
		return ErrNotAuthenticated
	}
	return nil
}

// isRetryable ошибка ввода или ответа сервера, после которой можно повторить шаг
func isRetryable(err error) bool {
	var flowErr *auth.FlowError
	return errors.As(err, &flowErr) ||
		errors.Is(err, validation.ErrValidation) ||
		errors.Is(err, auth.ErrResetCodeExpired)
}

func parseFileID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid file id %q", validation.ErrValidation, s)
	}
	return id, nil
}

// PrintUsage печатает справку
func PrintUsage(w io.Writer) {
	p := func(s string) { _, _ = fmt.Fprintln(w, s) }

	p("SecureShare Client")
	p("")
	p("Usage:")
	p("  secureshare [OPTIONS] COMMAND [ARGS]")
	p("")
	p("Options:")
	p("  -version                 Show version information")
	p("  -config PATH             JSON config file")
	p("  -origin URL              Client origin (default: http://localhost:8080)")
	p("  -api URL                 API base URL override (env SECURESHARE_API_BASE_URL)")
	p("  -session-db PATH         Session database (default: secureshare-session.db)")
	p("  -links-db PATH           Share links database (default: secureshare-links.db)")
	p("  -log-level LEVEL         debug, info, warn, error (default: warn)")
	p("  -timeout DURATION        HTTP request timeout (default: 30s)")
	p("  -debounce DURATION       File list refetch delay (default: 300ms)")
	p("  -delete-routes LIST      Comma separated delete routes, e.g. \"DELETE /files/{id}\"")
	p("")
	p("Commands:")
	p("  register                 Register new user")
	p("  login                    Login (with 2FA if enabled)")
	p("  logout                   Logout")
	p("  status                   Show authentication status")
	p("  forgot-password          Reset password with an emailed code")
	p("  files [FLAGS]            List files (-search -type -from -to -sort -order -page -size)")
	p("  browse                   Interactive file browser")
	p("  upload [FLAGS] PATH...   Upload files and create share links (-expire -max-views -reuse)")
	p("  share [FLAGS] ID         Create or reuse a share link (-expire -max-views -reuse)")
	p("  delete ID                Delete file")
	p("  2fa [status|enable|disable|toggle]")
	p("                           Manage two-factor authentication")
	p("  change-password          Change account password")
	p("")
	p("Examples:")
	p("  secureshare login")
	p("  secureshare files -search report -type application/pdf -from 2024-01-01")
	p("  secureshare upload -expire 3 -max-views 5 ./report.pdf")
	p("  secureshare share b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	p("  secureshare -api https://share.example.com/api browse")
}
