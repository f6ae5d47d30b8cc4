package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/voidshard/playground/pkg/api/http/common"
	"github.com/voidshard/playground/pkg/errors"
	"github.com/voidshard/playground/pkg/structs"
)

// Client talks to the playground server over HTTP.
type Client struct {
	url  *url.URL
	opts *Options
	hc   *http.Client
}

// New returns a Client for the server at address (eg. "http://localhost:8080").
func New(address string, opts *Options) (*Client, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.SetDefaults()

	u, err := url.Parse(address)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w address %q requires a scheme and host", errors.ErrInvalidArg, address)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.TLSConfig != nil {
		transport.TLSClientConfig = opts.TLSConfig
	}

	return &Client{
		url:  u,
		opts: opts,
		hc:   &http.Client{Transport: transport},
	}, nil
}

// Run fetches the status of the given run.
func (c *Client) Run(ctx context.Context, runID string) (*structs.RunStatus, error) {
	if runID == "" {
		return nil, fmt.Errorf("%w run id is required", errors.ErrInvalidArg)
	}
	addr := c.addr(common.API_RUNS, runID)
	var out structs.RunStatus
	return &out, c.genericGet(ctx, addr, &out)
}

// Share posts the given configuration text. The returned response is nil if
// the server answered with a JSON null.
func (c *Client) Share(ctx context.Context, config string) (*structs.ShareResponse, error) {
	addr := c.addr(common.API_SHARE)
	var out *structs.ShareResponse
	err := c.genericPost(ctx, addr, &structs.ShareRequest{Config: config}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// addr joins path & any further segments onto the base address. Segments are escaped.
func (c *Client) addr(path string, segments ...string) *url.URL {
	p := strings.TrimSuffix(c.url.Path, "/") + path
	raw := strings.TrimSuffix(c.url.EscapedPath(), "/") + path
	for _, s := range segments {
		p += "/" + s
		raw += "/" + url.PathEscape(s)
	}
	return &url.URL{Scheme: c.url.Scheme, Host: c.url.Host, Path: p, RawPath: raw}
}
