package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/voidshard/playground/pkg/api/http/common"
	"github.com/voidshard/playground/pkg/errors"
)

// genericPost is a helper to POST data to a given URL and unmarshal the response
func (c *Client) genericPost(ctx context.Context, addr *url.URL, in interface{}, out interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, addr, data, out)
}

// genericGet is a helper to GET data from a given URL and unmarshal the response.
func (c *Client) genericGet(ctx context.Context, addr *url.URL, out interface{}) error {
	return c.do(ctx, http.MethodGet, addr, nil, out)
}

// do sends a single request, bounded by the client timeout, and decodes the JSON reply into out.
func (c *Client) do(ctx context.Context, method string, addr *url.URL, data []byte, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, addr.String(), body)
	if err != nil {
		return err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	reqID := uuid.NewString()
	req.Header.Set(common.HEADER_REQUEST_ID, reqID)

	c.opts.Logger.Debug("sending request", "method", method, "url", addr.String(), "request_id", reqID)

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// still subject to the timeout; a slow body counts against the request
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	c.opts.Logger.Debug("received response", "request_id", reqID, "status", resp.StatusCode, "bytes", len(raw))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w %d, returned %s", errors.ErrBadStatusCode, resp.StatusCode, string(raw))
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Errorf("%w empty body with status code %d", errors.ErrBadResponse, resp.StatusCode)
	}

	err = json.Unmarshal(raw, out)
	if err != nil {
		return fmt.Errorf("%w %v", errors.ErrBadResponse, err)
	}
	return nil
}
