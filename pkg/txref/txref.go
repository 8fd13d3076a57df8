// Package txref generates unique transaction references for Chapa requests.
package txref

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultPrefix is prepended to generated references.
	DefaultPrefix = "TX-"
	// DefaultSize is the length of the random portion.
	DefaultSize = 15
)

// Options controls reference generation.
type Options struct {
	// Prefix overrides DefaultPrefix. Ignored when RemovePrefix is set.
	Prefix string
	// Size overrides DefaultSize.
	Size int
	// RemovePrefix drops the prefix entirely.
	RemovePrefix bool
}

// New generates a transaction reference with the default options.
func New() string {
	return Generate(Options{})
}

// Generate builds a reference of the form "<prefix><random>". The random
// portion is hex from one or more UUIDs, truncated to the requested size.
func Generate(opts Options) string {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}

	var b strings.Builder
	for b.Len() < size {
		b.WriteString(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}
	random := b.String()[:size]

	if opts.RemovePrefix {
		return random
	}
	return prefix + random
}
