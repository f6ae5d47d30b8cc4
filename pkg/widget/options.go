package widget

import (
	"log/slog"
	"time"
)

const (
	defaultInterval = 5 * time.Second
)

// Options configure the poller & submitter.
type Options struct {
	// Interval between polls. Defaults to 5s.
	Interval time.Duration

	// DropStale ignores a run status whose request was sent before one we've already
	// displayed. By default overlapping polls aren't ordered and the last response to
	// arrive is shown, even if it's older.
	DropStale bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// SetDefaults fills in any unset fields.
func (o *Options) SetDefaults() {
	if o.Interval <= 0 {
		o.Interval = defaultInterval
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

func (o *Options) orDefault() *Options {
	if o == nil {
		o = &Options{}
	}
	o.SetDefaults()
	return o
}
