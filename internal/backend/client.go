// Package backend adalah klien REST untuk backend SIPENSIUN (atau backend lain
// dengan bentuk yang sama). Semua respons dibungkus {data} atau {success, data}.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"sipensiun/internal/cache"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	DefaultTimeout = 15 * time.Second
	DefaultRetries = 2
)

var ErrSessionExpired = errors.New("sesi login telah berakhir")

// APIError dibentuk dari respons non-2xx. Message diambil dari field
// "message" (atau "error") backend, selain itu "Request failed".
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Retries int
	Cache   *cache.Service
	Logger  *zap.Logger

	// Dipanggil setiap kali backend menjawab 401.
	OnSessionExpired func()

	// Untuk test: transport custom.
	HTTPClient *http.Client
}

type Client struct {
	http  *resty.Client
	cache *cache.Service
	log   *zap.Logger

	mu               sync.RWMutex
	onSessionExpired func()
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewService(nil)
	}

	var rc *resty.Client
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(opts.Retries).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(retryIdempotent)
	if opts.Token != "" {
		rc.SetAuthToken(opts.Token)
	}

	return &Client{
		http:             rc,
		cache:            opts.Cache,
		log:              opts.Logger,
		onSessionExpired: opts.OnSessionExpired,
	}
}

// retryIdempotent: hanya GET/PUT/DELETE, hanya untuk error jaringan atau 5xx.
func retryIdempotent(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil {
		return false
	}
	switch r.Request.Method {
	case http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodHead:
	default:
		return false
	}
	return err != nil || r.StatusCode() >= 500
}

func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
	c.cache.API.Invalidate(keyCurrentUser)
}

func (c *Client) OnSessionExpired(fn func()) {
	c.mu.Lock()
	c.onSessionExpired = fn
	c.mu.Unlock()
}

// Request adalah satu panggilan ke backend.
type Request struct {
	Method string
	Path   string
	Query  map[string]string
	Body   any

	// Anonymous: 401 berarti kredensial salah, bukan sesi berakhir.
	Anonymous bool
	// Raw: decode seluruh body tanpa membuka envelope "data".
	Raw bool
}

// Do mengeksekusi req dan men-decode isi envelope ke out (boleh nil).
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	r := c.http.R().SetContext(ctx)
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	return c.handle(ctx, req, resp, err, out)
}

func (c *Client) handle(ctx context.Context, req Request, resp *resty.Response, err error, out any) error {
	method, path := req.Method, req.Path
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		c.log.Warn("backend request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized && !req.Anonymous {
		c.mu.RLock()
		hook := c.onSessionExpired
		c.mu.RUnlock()
		if hook != nil {
			hook()
		}
		return ErrSessionExpired
	}

	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode(), Message: errorMessage(resp.Body())}
		c.log.Debug("backend returned error",
			zap.String("method", method), zap.String("path", path),
			zap.Int("status", apiErr.Status), zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil {
		return nil
	}
	var data json.RawMessage
	if req.Raw {
		data = json.RawMessage(resp.Body())
	} else if data, err = Unwrap(resp.Body()); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// Unwrap mengambil isi "data" dari envelope. Tanpa kunci "data", body mentah dikembalikan.
func Unwrap(body []byte) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "{") {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("decode envelope: %w", err)
		}
		if data, ok := env["data"]; ok {
			return data, nil
		}
	}
	return json.RawMessage(trimmed), nil
}

func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return "Request failed"
}
