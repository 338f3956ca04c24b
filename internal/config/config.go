// Package config собирает настройки клиента из значений по умолчанию,
// JSON файла, переменных окружения и флагов командной строки.
// Каждый следующий источник перекрывает предыдущий.
package config

import (
	"fmt"
	"time"

	"github.com/iudanet/secureshare/internal/client/api"
	"github.com/iudanet/secureshare/internal/logging"
	"github.com/iudanet/secureshare/internal/models"
)

// Переменные окружения
const (
	EnvAPIBaseURL = "SECURESHARE_API_BASE_URL"
	EnvOrigin     = "SECURESHARE_ORIGIN"
)

// ShareDefaults параметры ссылок по умолчанию
type ShareDefaults struct {
	MaxViews      string `json:"max_views"`
	ExpireDays    int    `json:"expire_days"`
	ReuseExisting bool   `json:"reuse_existing"`
}

// Settings переводит значения в models.ShareSettings
func (s ShareDefaults) Settings() models.ShareSettings {
	return models.ShareSettings{
		ExpireDays:    s.ExpireDays,
		MaxViews:      s.MaxViews,
		ReuseExisting: s.ReuseExisting,
	}
}

// Config настройки клиента
type Config struct {
	Origin         string
	APIBaseURL     string
	SessionDB      string
	LinksDB        string
	LogLevel       string
	DeleteRoutes   []string
	Share          ShareDefaults
	RequestTimeout time.Duration
	Debounce       time.Duration
}

// Default возвращает настройки по умолчанию
func Default() *Config {
	routes := make([]string, 0, len(api.DefaultDeleteRoutes))
	for _, r := range api.DefaultDeleteRoutes {
		routes = append(routes, r.String())
	}

	share := models.DefaultShareSettings()

	return &Config{
		Origin:         "http://localhost:8080",
		SessionDB:      "secureshare-session.db",
		LinksDB:        "secureshare-links.db",
		LogLevel:       logging.DefaultLevel,
		RequestTimeout: api.DefaultTimeout,
		Debounce:       300 * time.Millisecond,
		DeleteRoutes:   routes,
		Share: ShareDefaults{
			ExpireDays:    share.ExpireDays,
			MaxViews:      share.MaxViews,
			ReuseExisting: share.ReuseExisting,
		},
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.SessionDB == "" {
		return fmt.Errorf("session_db must not be empty")
	}
	if c.LinksDB == "" {
		return fmt.Errorf("links_db must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive, got %s", c.Debounce)
	}
	if c.Share.ExpireDays < 1 {
		return fmt.Errorf("share.expire_days must be positive, got %d", c.Share.ExpireDays)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.Routes(); err != nil {
		return err
	}
	return nil
}

// Routes разбирает варианты удаления файла
func (c *Config) Routes() ([]api.DeleteRoute, error) {
	if len(c.DeleteRoutes) == 0 {
		return nil, fmt.Errorf("delete_routes must contain at least one route")
	}

	routes := make([]api.DeleteRoute, 0, len(c.DeleteRoutes))
	for _, s := range c.DeleteRoutes {
		r, err := api.ParseDeleteRoute(s)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}
