package client

import (
	"crypto/tls"
	"log/slog"
	"time"
)

const (
	defaultTimeout = 2 * time.Second
)

// Options configure a Client.
type Options struct {
	// Timeout bounds every request, from dial until the body is read.
	// Defaults to 2s.
	Timeout time.Duration

	// TLSConfig is used for https addresses, if set.
	TLSConfig *tls.Config

	// Logger receives per-request debug logging.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// SetDefaults fills in any unset fields.
func (o *Options) SetDefaults() {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}
