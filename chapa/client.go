// Package chapa is a typed client for the Chapa payment API
// (https://developer.chapa.co/): transactions, transfers, bank and balance
// queries, currency swaps, and direct mobile-money charges.
//
// Every operation is one authenticated request/response round trip. The
// client decodes response bodies into tolerant envelopes without consulting
// the HTTP status code; the API reports logical failures with both 200 and
// 400, so the envelope's own status and data fields are the success signal.
package chapa

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/chapa-et/chapa-go/pkg/config"
	pkgerrors "github.com/chapa-et/chapa-go/pkg/errors"
	"github.com/chapa-et/chapa-go/pkg/logger"
)

// Client issues authenticated requests against the Chapa API. It owns one
// immutable Config and one reusable HTTP transport; both are safe for use
// from concurrent goroutines.
type Client struct {
	cfg  config.Config
	http *http.Client
	log  *logger.Logger
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithLogger attaches a structured logger. Without it the client is silent.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithHTTPClient replaces the default transport. The caller is then
// responsible for timeout configuration.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// NewClient builds a client for the given secret key with default
// configuration (production origin, v1, 30s timeout).
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	cfg, err := config.NewBuilder().APIKey(apiKey).Build()
	if err != nil {
		return nil, err
	}
	return NewClientFromConfig(cfg, opts...)
}

// NewClientFromConfig builds a client from an explicit Config. The header
// map is copied so the client's configuration is independent of the
// caller's value.
func NewClientFromConfig(cfg config.Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" || cfg.APIKey == config.PlaceholderAPIKey {
		return nil, pkgerrors.New(pkgerrors.CodeMissingAPIKey,
			"api key is required but not set; set CHAPA_API_PUBLIC_KEY or call APIKey()")
	}
	cfg.DefaultHeaders = cfg.CloneHeaders()

	c := &Client{
		cfg:  cfg,
		http: newHTTPClient(cfg.Timeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:    10,
		IdleConnTimeout: 30 * time.Second,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// send is the shared dispatch pipeline behind every endpoint method. The
// response body is decoded into E regardless of the HTTP status code.
func send[E any](ctx context.Context, c *Client, method, endpoint string, body any) (*E, error) {
	// No slash normalization: a base URL with a trailing slash produces a
	// double slash the API rejects.
	url := fmt.Sprintf("%s/%s/%s", c.cfg.BaseURL, c.cfg.Version, endpoint)

	headers, err := buildHeaders(c.cfg.DefaultHeaders)
	if err != nil {
		return nil, err
	}

	switch method {
	case http.MethodGet, http.MethodPost:
	default:
		return nil, pkgerrors.New(pkgerrors.CodeInvalidMethod, "http method is not supported").
			WithDetails(map[string]string{"method": method})
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	c.logPhase(ctx, "request", method, endpoint, nil)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logPhase(ctx, "error", method, endpoint, map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "send request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logPhase(ctx, "error", method, endpoint, map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "read response body")
	}

	var envelope E
	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.logPhase(ctx, "error", method, endpoint, map[string]any{
			"error":       err.Error(),
			"http_status": resp.StatusCode,
		})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDecode, err, "decode response body").
			WithDetails(map[string]any{"http_status": resp.StatusCode})
	}

	c.logPhase(ctx, "response", method, endpoint, map[string]any{"http_status": resp.StatusCode})
	return &envelope, nil
}

// buildHeaders validates the configured headers as legal HTTP tokens before
// any network activity. An illegal name or value fails the whole call.
func buildHeaders(headers map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(headers))
	for key, value := range headers {
		if !validHeaderName(key) {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidHeader, "invalid header name").
				WithDetails(map[string]string{"name": key})
		}
		if !validHeaderValue(value) {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidHeader, "invalid header value").
				WithDetails(map[string]string{"name": key})
		}
		out[key] = value
	}
	return out, nil
}

// validHeaderName reports whether s is a legal RFC 7230 field-name token.
func validHeaderName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTokenChar(s[i]) {
			return false
		}
	}
	return true
}

// validHeaderValue rejects control characters other than horizontal tab.
func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '\t' {
			continue
		}
		if b < 0x20 || b == 0x7f {
			return false
		}
	}
	return true
}

func isTokenChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	return strings.IndexByte("!#$%&'*+-.^_`|~", b) >= 0
}

func (c *Client) logPhase(ctx context.Context, phase, method, endpoint string, fields map[string]any) {
	if c == nil || c.log == nil {
		return
	}
	logFields := map[string]any{
		"phase":    phase,
		"method":   method,
		"endpoint": endpoint,
	}
	for k, v := range fields {
		logFields[k] = redact(k, v)
	}
	ctx = c.log.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.log.Warn(ctx, "chapa request failed")
	default:
		c.log.Debug(ctx, fmt.Sprintf("chapa %s", phase))
	}
}

func redact(key string, value any) any {
	lower := strings.ToLower(key)
	for _, sensitive := range []string{"key", "secret", "token", "email", "phone", "mobile", "account"} {
		if strings.Contains(lower, sensitive) {
			return "[REDACTED]"
		}
	}
	return value
}
