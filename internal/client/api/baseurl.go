package api

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DevPort порт локального dev-сервера фронтенда
	DevPort = "3000"
	// DevBackendURL адрес backend при запуске с dev-порта
	DevBackendURL = "http://localhost:8000"
	// SameOriginPrefix префикс API на том же origin
	SameOriginPrefix = "/api"
)

// ResolveBaseURL вычисляет базовый адрес API:
//  1. origin на dev-порту 3000 -> всегда http://localhost:8000
//  2. непустой override
//  3. иначе префикс /api на том же origin
func ResolveBaseURL(origin, override string) string {
	if u, err := url.Parse(strings.TrimSpace(origin)); err == nil && u.Port() == DevPort {
		return DevBackendURL
	}

	if o := strings.TrimSpace(override); o != "" {
		return o
	}

	return SameOriginPrefix
}

// IsAbsoluteHTTP сообщает, является ли s абсолютным http(s) адресом
func IsAbsoluteHTTP(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// absoluteEndpoint превращает baseURL в абсолютный адрес, разрешая относительный путь от origin
func absoluteEndpoint(origin, baseURL string) (*url.URL, error) {
	if IsAbsoluteHTTP(baseURL) {
		return url.Parse(baseURL)
	}

	if !IsAbsoluteHTTP(origin) {
		return nil, fmt.Errorf("cannot resolve relative API base %q: origin %q is not an absolute http(s) URL", baseURL, origin)
	}

	base, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("invalid origin: %w", err)
	}
	ref, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	return base.ResolveReference(ref), nil
}
