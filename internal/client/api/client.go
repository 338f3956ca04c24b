package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/secureshare/internal/client/storage"
)

// DefaultTimeout таймаут HTTP запроса по умолчанию
const DefaultTimeout = 30 * time.Second

// TokenStore источник bearer токена для адаптера.
// Адаптер только читает токен и удаляет его при 401, записывает его auth.Machine.
type TokenStore interface {
	GetSession(ctx context.Context) (*storage.SessionData, error)
	DeleteSession(ctx context.Context) error
}

// UnauthorizedHandler вызывается при ответе 401 на любой запрос
type UnauthorizedHandler func(err error)

// Client представляет HTTP клиент для взаимодействия с сервером SecureShare
type Client struct {
	httpClient *http.Client
	tokens     TokenStore
	logger     *slog.Logger
	endpoint   *url.URL // абсолютный адрес API
	baseURL    string   // результат ResolveBaseURL, может быть относительным
	origin     string

	mu             sync.RWMutex
	onUnauthorized UnauthorizedHandler
}

// Config параметры HTTP клиента
type Config struct {
	Origin     string // адрес, с которого "открыт" клиент
	APIBaseURL string // явный адрес API (override)
	Timeout    time.Duration
}

// NewClient создает новый API клиент.
// Базовый адрес вычисляется один раз через ResolveBaseURL.
func NewClient(cfg Config, tokens TokenStore, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	baseURL := ResolveBaseURL(cfg.Origin, cfg.APIBaseURL)
	endpoint, err := absoluteEndpoint(cfg.Origin, baseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:  baseURL,
		origin:   cfg.Origin,
		endpoint: endpoint,
		tokens:   tokens,
		logger:   logger,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newLoggingTransport(http.DefaultTransport, logger),
			// Копируем заголовок Authorization при редиректе
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}, nil
}

// BaseURL возвращает базовый адрес API как он был вычислен (может быть относительным)
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Origin возвращает адрес клиента
func (c *Client) Origin() string {
	return c.origin
}

// SetOnUnauthorized регистрирует обработчик 401.
// Слот один: новый обработчик заменяет предыдущий, nil снимает регистрацию.
func (c *Client) SetOnUnauthorized(h UnauthorizedHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = h
}

// MultipartFile файл для отправки в multipart/form-data
type MultipartFile struct {
	Content  io.Reader
	Field    string
	Filename string
}

// Request описывает исходящий запрос. Заполняется не более одного из JSON, Form, File.
type Request struct {
	JSON   any
	Query  url.Values
	Form   url.Values
	File   *MultipartFile
	Method string
	Path   string
}

// Response сырой ответ сервера с кодом 2xx
type Response struct {
	Header     http.Header
	Body       []byte
	StatusCode int
}

// Decode декодирует тело ответа в out
func (r *Response) Decode(out any) error {
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Do выполняет HTTP запрос к API.
// Токен из хранилища добавляется к каждому запросу; ответ 401 очищает токен
// и вызывает обработчик до возврата ошибки.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	body, contentType, err := encodeBody(r)
	if err != nil {
		return nil, err
	}

	target := c.resolve(r.Path, r.Query)

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	if err := c.applyAuth(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newError(r.Method, r.Path, resp.StatusCode, respBody)
		if resp.StatusCode == http.StatusUnauthorized {
			c.handleUnauthorized(ctx, apiErr)
		}
		return nil, apiErr
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// doJSON выполняет запрос и декодирует JSON ответ в result (если result != nil)
func (c *Client) doJSON(ctx context.Context, r Request, result any) (*Response, error) {
	resp, err := c.Do(ctx, r)
	if err != nil {
		return nil, err
	}
	if result != nil && len(bytes.TrimSpace(resp.Body)) > 0 {
		if err := resp.Decode(result); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// applyAuth добавляет заголовок Authorization, если в хранилище есть токен
func (c *Client) applyAuth(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}

	session, err := c.tokens.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read session token: %w", err)
	}

	if session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}
	return nil
}

// handleUnauthorized очищает сохраненный токен и уведомляет владельца сессии
func (c *Client) handleUnauthorized(ctx context.Context, apiErr *Error) {
	if c.tokens != nil {
		// Удаляем токен даже если контекст запроса уже отменен
		if err := c.tokens.DeleteSession(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
			c.logger.Warn("failed to clear session token", "error", err)
		}
	}

	c.mu.RLock()
	handler := c.onUnauthorized
	c.mu.RUnlock()

	if handler != nil {
		handler(apiErr)
	}
}

// resolve строит абсолютный адрес запроса относительно endpoint
func (c *Client) resolve(path string, query url.Values) string {
	u := *c.endpoint
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawPath = ""
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func encodeBody(r Request) (io.Reader, string, error) {
	switch {
	case r.File != nil:
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)

		field := r.File.Field
		if field == "" {
			field = "file"
		}
		part, err := mw.CreateFormFile(field, r.File.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create multipart part: %w", err)
		}
		if _, err := io.Copy(part, r.File.Content); err != nil {
			return nil, "", fmt.Errorf("failed to write multipart content: %w", err)
		}
		if err := mw.Close(); err != nil {
			return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
		}
		return &buf, mw.FormDataContentType(), nil

	case r.Form != nil:
		return strings.NewReader(r.Form.Encode()), "application/x-www-form-urlencoded", nil

	case r.JSON != nil:
		jsonData, err := json.Marshal(r.JSON)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body: %w", err)
		}
		return bytes.NewReader(jsonData), "application/json", nil
	}

	return nil, "", nil
}
