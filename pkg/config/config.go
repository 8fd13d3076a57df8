// Package config holds the immutable client configuration and its builder.
//
// A Config is built once, validated, and then owned read-only by a single
// client. Defaults come from the environment (CHAPA_API_PUBLIC_KEY,
// CHAPA_BASE_URL, CHAPA_API_VERSION, CHAPA_TIMEOUT) so that the common case
// needs no code beyond Builder().Build().
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	pkgerrors "github.com/chapa-et/chapa-go/pkg/errors"
)

// PlaceholderAPIKey is the sentinel used when no key was found in the
// environment. A Config carrying it never passes Build.
const PlaceholderAPIKey = "placeholder_api_key"

const (
	DefaultBaseURL = "https://api.chapa.co"
	DefaultVersion = "v1"
	DefaultTimeout = 30 * time.Second
)

// Config carries everything the client needs to reach the Chapa API.
type Config struct {
	// APIKey is the Chapa secret key used for bearer authentication.
	APIKey string
	// BaseURL is the API origin. It must not end with a trailing slash;
	// request URLs are joined with plain formatting and are not normalized.
	BaseURL string
	// Version is the API version segment of every request path.
	Version string
	// DefaultHeaders are sent with every request. Always contains a
	// Content-Type entry.
	DefaultHeaders map[string]string
	// Timeout is the per-request timeout applied to the HTTP transport.
	Timeout time.Duration
}

// CloneHeaders returns an independent copy of the default headers so that a
// client can own its configuration without sharing mutable state.
func (c Config) CloneHeaders() map[string]string {
	clone := make(map[string]string, len(c.DefaultHeaders))
	for k, v := range c.DefaultHeaders {
		clone[k] = v
	}
	return clone
}

type envDefaults struct {
	APIKey  string        `envconfig:"CHAPA_API_PUBLIC_KEY"`
	BaseURL string        `envconfig:"CHAPA_BASE_URL" default:"https://api.chapa.co"`
	Version string        `envconfig:"CHAPA_API_VERSION" default:"v1"`
	Timeout time.Duration `envconfig:"CHAPA_TIMEOUT" default:"30s"`
}

// Builder accumulates configuration options and validates them on Build.
type Builder struct {
	apiKey         string
	baseURL        string
	version        string
	defaultHeaders map[string]string
	timeout        time.Duration
}

// NewBuilder returns a Builder seeded with environment-derived defaults.
// When CHAPA_API_PUBLIC_KEY is unset the api key stays at the placeholder
// sentinel and Build fails until APIKey is called.
func NewBuilder() *Builder {
	var env envDefaults
	if err := envconfig.Process("", &env); err != nil {
		env = envDefaults{
			BaseURL: DefaultBaseURL,
			Version: DefaultVersion,
			Timeout: DefaultTimeout,
		}
	}
	if env.APIKey == "" {
		env.APIKey = PlaceholderAPIKey
	}

	return &Builder{
		apiKey:  env.APIKey,
		baseURL: env.BaseURL,
		version: env.Version,
		defaultHeaders: map[string]string{
			"Content-Type": "application/json",
		},
		timeout: env.Timeout,
	}
}

// APIKey sets the Chapa secret key.
func (b *Builder) APIKey(key string) *Builder {
	b.apiKey = key
	return b
}

// BaseURL overrides the API origin.
func (b *Builder) BaseURL(url string) *Builder {
	b.baseURL = url
	return b
}

// Version overrides the API version segment.
func (b *Builder) Version(version string) *Builder {
	b.version = version
	return b
}

// Timeout overrides the per-request timeout.
func (b *Builder) Timeout(d time.Duration) *Builder {
	b.timeout = d
	return b
}

// AddHeader adds a header sent with every request.
func (b *Builder) AddHeader(key, value string) *Builder {
	b.defaultHeaders[key] = value
	return b
}

// Build validates the accumulated options and returns the immutable Config.
// It fails when the api key is missing or still the environment placeholder.
// No network or disk access happens here.
func (b *Builder) Build() (Config, error) {
	if b.apiKey == "" || b.apiKey == PlaceholderAPIKey {
		return Config{}, pkgerrors.New(pkgerrors.CodeMissingAPIKey,
			"api key is required but not set; set CHAPA_API_PUBLIC_KEY or call APIKey()")
	}

	headers := make(map[string]string, len(b.defaultHeaders))
	for k, v := range b.defaultHeaders {
		headers[k] = v
	}

	return Config{
		APIKey:         b.apiKey,
		BaseURL:        b.baseURL,
		Version:        b.version,
		DefaultHeaders: headers,
		Timeout:        b.timeout,
	}, nil
}
