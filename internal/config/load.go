package config

import (
	"flag"
	"strings"
)

// Load собирает конфигурацию: значения по умолчанию -> JSON (-config) -> окружение -> флаги.
// Флаги регистрируются в fs и разбираются из args; оставшиеся аргументы доступны через fs.Args().
func Load(fs *flag.FlagSet, args []string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	var (
		configPath = fs.String("config", "", "Path to JSON config file")
		origin     = fs.String("origin", cfg.Origin, "Client origin URL (port 3000 forces the local backend)")
		apiBase    = fs.String("api", "", "API base URL override")
		sessionDB  = fs.String("session-db", cfg.SessionDB, "Path to session database")
		linksDB    = fs.String("links-db", cfg.LinksDB, "Path to share links database")
		logLevel   = fs.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
		timeout    = fs.Duration("timeout", cfg.RequestTimeout, "HTTP request timeout")
		debounce   = fs.Duration("debounce", cfg.Debounce, "Delay before refetching the file list")
		routes     = fs.String("delete-routes", "", "Comma separated delete routes, e.g. \"DELETE /files/{id}\"")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configPath != "" {
		if err := applyJSON(cfg, *configPath); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg, getenv)

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["origin"] {
		cfg.Origin = *origin
	}
	if set["api"] {
		cfg.APIBaseURL = *apiBase
	}
	if set["session-db"] {
		cfg.SessionDB = *sessionDB
	}
	if set["links-db"] {
		cfg.LinksDB = *linksDB
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevel
	}
	if set["timeout"] {
		cfg.RequestTimeout = *timeout
	}
	if set["debounce"] {
		cfg.Debounce = *debounce
	}
	if set["delete-routes"] {
		cfg.DeleteRoutes = splitRoutes(*routes)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := strings.TrimSpace(getenv(EnvAPIBaseURL)); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(getenv(EnvOrigin)); v != "" {
		cfg.Origin = v
	}
}

func splitRoutes(s string) []string {
	var routes []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			routes = append(routes, p)
		}
	}
	return routes
}

