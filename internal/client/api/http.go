package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/common"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"

	maxBodySize = 4 << 20
)

type tokenKey struct{}

// WithAccessToken attaches the bearer token used by entry calls.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func accessToken(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey{}).(string)
	return s
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the API rooted at baseURL, e.g.
// "http://localhost:5000/api". A zero timeout means no client-side limit.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	var res models.AuthResult
	err := c.call(ctx, http.MethodPost, "/auth/login", models.LoginRequest{Email: email, Password: password}, &res, authErrors)
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, fmt.Errorf("%w: login response without token", common.ErrTransport)
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) error {
	req := models.RegisterRequest{Username: username, Email: email, Password: password}
	return c.call(ctx, http.MethodPost, "/auth/register", req, nil, authErrors)
}

func (c *HTTPClient) ListEntries(ctx context.Context) ([]models.Entry, error) {
	var list []models.Entry
	if err := c.call(ctx, http.MethodGet, "/entries", nil, &list, entryErrors); err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Entry{}
	}
	return list, nil
}

func (c *HTTPClient) CreateEntry(ctx context.Context, p models.EntryPayload) (*models.Entry, error) {
	var e models.Entry
	if err := c.call(ctx, http.MethodPost, "/entries", p, &e, entryErrors); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) UpdateEntry(ctx context.Context, id string, p models.EntryPayload) (*models.Entry, error) {
	var e models.Entry
	if err := c.call(ctx, http.MethodPut, "/entries/"+url.PathEscape(id), p, &e, entryErrors); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) DeleteEntry(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/entries/"+url.PathEscape(id), nil, nil, entryErrors)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	var res struct {
		Status string `json:"status"`
	}
	if err := c.call(ctx, http.MethodGet, "/health", nil, &res, entryErrors); err != nil {
		return err
	}
	if res.Status != "ok" {
		return fmt.Errorf("%w: health status %q", common.ErrTransport, res.Status)
	}
	return nil
}

type errorMapper func(status int, message string) error

// authErrors: any rejection of credentials is the server's verdict, there
// is no session yet to expire.
func authErrors(status int, message string) error {
	return &common.ServerError{Status: status, Message: message}
}

func entryErrors(status int, message string) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%w: status %d", common.ErrAuthRejected, status)
	}
	return &common.ServerError{Status: status, Message: message}
}

func (c *HTTPClient) call(ctx context.Context, method, path string, in, out any, mapError errorMapper) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := accessToken(ctx); tok != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", common.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: read %s %s: %v", common.ErrTransport, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapError(resp.StatusCode, messageOf(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: malformed response to %s %s: %v", common.ErrTransport, method, path, err)
	}
	return nil
}

func messageOf(raw []byte) string {
	var m models.MessageResponse
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	return m.Message
}
