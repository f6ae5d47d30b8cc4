package widget

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/voidshard/playground/pkg/api"
	"github.com/voidshard/playground/pkg/api/http/common"
)

const (
	MsgNoShareInfo = "Could not get sharing information."
	MsgNoConfig    = "You do not have any configuration information."
)

// Submitter shares the configuration on the page & displays where to find it.
type Submitter struct {
	svc    api.API
	config ValueSource
	result TextSink
	origin string
	log    *slog.Logger
}

// NewSubmitter returns a submitter reading from config & writing to result.
// Share URLs are built on origin.
func NewSubmitter(svc api.API, config ValueSource, result TextSink, origin string, opts *Options) *Submitter {
	opts = opts.orDefault()
	return &Submitter{
		svc:    svc,
		config: config,
		result: result,
		origin: origin,
		log:    opts.Logger.With("component", "submitter"),
	}
}

// Submit shares the current configuration. On a failed request the error is
// returned & nothing is displayed.
func (s *Submitter) Submit(ctx context.Context) error {
	config := s.config.Value()
	s.log.Debug("sharing", "bytes", len(config))

	resp, err := s.svc.Share(ctx, config)
	if err != nil {
		return err
	}

	switch {
	case resp == nil:
		s.result.SetText(MsgNoShareInfo)
	case resp.NoConfig():
		s.result.SetText(MsgNoConfig)
	default:
		s.result.SetText(ShareURL(s.origin, resp.ID))
	}
	return nil
}

// Click submits in the background, as a button press would. Clicks aren't
// serialised; each one displays its own result when it lands.
func (s *Submitter) Click(ctx context.Context) {
	go func() {
		err := s.Submit(ctx)
		if err != nil {
			s.log.Debug("share failed", "err", err)
		}
	}()
}

// ShareURL returns the address at which shared config id can be loaded.
func ShareURL(origin, id string) string {
	return origin + "?" + common.SHARE_ID + "=" + url.QueryEscape(id)
}
