// Package sharing получает абсолютную ссылку на файл, какую бы форму ответа ни вернул сервер.
package sharing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/iudanet/secureshare/internal/client/api"
	"github.com/iudanet/secureshare/internal/models"
	"github.com/iudanet/secureshare/internal/validation"
	pkgapi "github.com/iudanet/secureshare/pkg/api"
)

// SharePathPrefix префикс публичной страницы ссылки, к нему добавляется токен
const SharePathPrefix = "/s/"

// ErrUnexpectedShape сервер вернул ответ, из которого нельзя получить ссылку
var ErrUnexpectedShape = errors.New("share API: unexpected response shape")

// ShareAPI запрос создания или переиспользования ссылки
type ShareAPI interface {
	CreateShareLink(ctx context.Context, fileID uuid.UUID, req pkgapi.ShareRequest) ([]byte, error)
}

// Resolver создает ссылки на файлы и приводит их к абсолютному виду
type Resolver struct {
	api    ShareAPI
	base   *url.URL
	origin string
}

// NewResolver создает Resolver.
// Относительные ссылки разрешаются от baseURL, если это абсолютный http(s) адрес, иначе от origin.
func NewResolver(shareAPI ShareAPI, baseURL, origin string) (*Resolver, error) {
	baseStr := origin
	if api.IsAbsoluteHTTP(baseURL) {
		baseStr = baseURL
	}

	base, err := url.Parse(baseStr)
	if err != nil {
		return nil, fmt.Errorf("invalid share link base %q: %w", baseStr, err)
	}

	return &Resolver{api: shareAPI, base: base, origin: origin}, nil
}

// EnsureShareLink создает (или получает существующую) ссылку на файл
func (r *Resolver) EnsureShareLink(ctx context.Context, fileID uuid.UUID, settings models.ShareSettings) (string, error) {
	maxViews, err := validation.ParseMaxViews(settings.MaxViews)
	if err != nil {
		return "", err
	}

	body, err := r.api.CreateShareLink(ctx, fileID, pkgapi.ShareRequest{
		ExpireDays:    settings.ExpireDays,
		MaxViews:      maxViews,
		ReuseExisting: settings.ReuseExisting,
	})
	if err != nil {
		return "", err
	}

	link, err := extractLink(body)
	if err != nil {
		return "", err
	}

	return r.absolutize(link)
}

// extractLink достает ссылку из ответа: url / share_url, token или строка
func extractLink(body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "", fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}

	switch trimmed[0] {
	case '{':
		var resp pkgapi.ShareResponse
		if err := json.Unmarshal(trimmed, &resp); err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
		}
		switch {
		case resp.URL != "":
			return resp.URL, nil
		case resp.ShareURL != "":
			return resp.ShareURL, nil
		case resp.Token != "":
			return SharePathPrefix + resp.Token, nil
		}
		return "", ErrUnexpectedShape

	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil || strings.TrimSpace(s) == "" {
			return "", ErrUnexpectedShape
		}
		return strings.TrimSpace(s), nil

	case '[':
		return "", fmt.Errorf("%w: array", ErrUnexpectedShape)
	}

	// тело обычным текстом
	s := string(trimmed)
	if strings.ContainsAny(s, " \t\n") {
		return "", fmt.Errorf("%w: %q", ErrUnexpectedShape, s)
	}
	return s, nil
}

func (r *Resolver) absolutize(link string) (string, error) {
	if api.IsAbsoluteHTTP(link) {
		u, err := url.Parse(link)
		if err != nil {
			return "", err
		}
		return u.String(), nil
	}

	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("invalid share link %q: %w", link, err)
	}

	if !api.IsAbsoluteHTTP(r.base.String()) {
		return "", fmt.Errorf("cannot make share link %q absolute: no absolute base (origin %q)", link, r.origin)
	}

	return r.base.ResolveReference(ref).String(), nil
}
