package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration time.Duration для JSON: строка вида "300ms" или число наносекунд
type Duration time.Duration

// UnmarshalJSON реализует json.Unmarshaler
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch val := v.(type) {
	case float64:
		*d = Duration(time.Duration(val))
	case string:
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", val, err)
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
	return nil
}

// fileConfig DTO JSON файла. Указатели отличают отсутствующее поле от нулевого значения.
type fileConfig struct {
	Origin         *string   `json:"origin"`
	APIBaseURL     *string   `json:"api_base_url"`
	SessionDB      *string   `json:"session_db"`
	LinksDB        *string   `json:"links_db"`
	LogLevel       *string   `json:"log_level"`
	RequestTimeout *Duration `json:"request_timeout"`
	Debounce       *Duration `json:"debounce"`
	DeleteRoutes   []string  `json:"delete_routes"`
	Share          *struct {
		ExpireDays    *int    `json:"expire_days"`
		MaxViews      *string `json:"max_views"`
		ReuseExisting *bool   `json:"reuse_existing"`
	} `json:"share"`
}

// applyJSON накладывает значения из JSON файла
func applyJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	setString(&cfg.Origin, fc.Origin)
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.SessionDB, fc.SessionDB)
	setString(&cfg.LinksDB, fc.LinksDB)
	setString(&cfg.LogLevel, fc.LogLevel)

	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(*fc.RequestTimeout)
	}
	if fc.Debounce != nil {
		cfg.Debounce = time.Duration(*fc.Debounce)
	}
	if fc.DeleteRoutes != nil {
		cfg.DeleteRoutes = fc.DeleteRoutes
	}

	if fc.Share != nil {
		if fc.Share.ExpireDays != nil {
			cfg.Share.ExpireDays = *fc.Share.ExpireDays
		}
		setString(&cfg.Share.MaxViews, fc.Share.MaxViews)
		if fc.Share.ReuseExisting != nil {
			cfg.Share.ReuseExisting = *fc.Share.ReuseExisting
		}
	}

	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
