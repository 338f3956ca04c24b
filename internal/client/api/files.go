package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/iudanet/secureshare/pkg/api"
)

// ListFiles запрашивает страницу файлов. Параметры передаются как есть.
func (c *Client) ListFiles(ctx context.Context, params url.Values) (*api.FileListResponse, error) {
	var resp api.FileListResponse
	if _, err := c.doJSON(ctx, Request{Method: http.MethodGet, Path: "/files", Query: params}, &resp); err != nil {
		return nil, fmt.Errorf("list files request failed: %w", err)
	}
	return &resp, nil
}

// Upload загружает один файл (multipart, поле "file")
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader, expireDays int) (*api.FileInfo, error) {
	query := url.Values{}
	query.Set("expire_days", strconv.Itoa(expireDays))

	var resp api.FileInfo
	_, err := c.doJSON(ctx, Request{
		Method: http.MethodPost,
		Path:   "/upload",
		Query:  query,
		File:   &MultipartFile{Field: "file", Filename: filename, Content: content},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	return &resp, nil
}

// CreateShareLink создает или переиспользует ссылку на файл.
// Форма ответа у разных версий сервера разная, поэтому тело возвращается сырым.
func (c *Client) CreateShareLink(ctx context.Context, fileID uuid.UUID, req api.ShareRequest) ([]byte, error) {
	resp, err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/share/" + fileID.String(), JSON: req})
	if err != nil {
		return nil, fmt.Errorf("share link request failed: %w", err)
	}
	return resp.Body, nil
}

// DeleteRoute один вариант запроса на удаление файла, например "DELETE /files/{id}"
type DeleteRoute struct {
	Method string
	Path   string // может содержать {id} в пути и в query
}

// DefaultDeleteRoutes варианты удаления, которые встречаются у разных версий сервера, в порядке попыток
var DefaultDeleteRoutes = []DeleteRoute{
	{Method: http.MethodDelete, Path: "/files/{id}"},
	{Method: http.MethodDelete, Path: "/file/{id}"},
	{Method: http.MethodDelete, Path: "/files?id={id}"},
	{Method: http.MethodPost, Path: "/files/{id}/delete"},
}

// ParseDeleteRoute разбирает строку вида "METHOD /path/{id}"
func ParseDeleteRoute(s string) (DeleteRoute, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return DeleteRoute{}, fmt.Errorf("invalid delete route %q: want \"METHOD /path\"", s)
	}

	method := strings.ToUpper(fields[0])
	switch method {
	case http.MethodDelete, http.MethodPost, http.MethodGet, http.MethodPut, http.MethodPatch:
	default:
		return DeleteRoute{}, fmt.Errorf("invalid delete route %q: unsupported method %s", s, fields[0])
	}

	if !strings.HasPrefix(fields[1], "/") || !strings.Contains(fields[1], "{id}") {
		return DeleteRoute{}, fmt.Errorf("invalid delete route %q: path must start with / and contain {id}", s)
	}

	return DeleteRoute{Method: method, Path: fields[1]}, nil
}

func (r DeleteRoute) String() string {
	return r.Method + " " + r.Path
}

// DeleteFile выполняет удаление файла одним вариантом запроса
func (c *Client) DeleteFile(ctx context.Context, route DeleteRoute, fileID uuid.UUID) error {
	path, rawQuery, _ := strings.Cut(route.Path, "?")
	path = strings.ReplaceAll(path, "{id}", url.PathEscape(fileID.String()))

	var query url.Values
	if rawQuery != "" {
		parsed, err := url.ParseQuery(rawQuery)
		if err != nil {
			return fmt.Errorf("invalid delete route query %q: %w", rawQuery, err)
		}
		query = url.Values{}
		for k, vs := range parsed {
			for _, v := range vs {
				query.Add(k, strings.ReplaceAll(v, "{id}", fileID.String()))
			}
		}
	}

	if _, err := c.Do(ctx, Request{Method: route.Method, Path: path, Query: query}); err != nil {
		return fmt.Errorf("delete request %s failed: %w", route.Method+" "+path, err)
	}
	return nil
}
