// Package client invokes commands on a remote textframe server.
//
//	c := client.New("http://127.0.0.1:7878", nil)
//	out, err := c.Invoke(ctx, "render_frame", json.RawMessage(`{"text":"abc"}`))
//
// Connection failures and 5xx responses are retried with backoff; error
// responses from the server are decoded back into [errors.Error] values so
// callers can test codes with [errors.Is].
package client

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

	"github.com/matzehuels/textframe/pkg/errors"
	"github.com/matzehuels/textframe/pkg/httputil"
	"github.com/matzehuels/textframe/pkg/server"
)

const (
	defaultAttempts = 3
	defaultDelay    = 200 * time.Millisecond
	defaultTimeout  = 10 * time.Second
)

// Client talks to a server started with `textframe serve`.
type Client struct {
	baseURL  string
	http     *http.Client
	attempts int
	delay    time.Duration
}

// New returns a client for baseURL. A nil httpClient uses a client with a
// 10 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     httpClient,
		attempts: defaultAttempts,
		delay:    defaultDelay,
	}
}

// WithRetry returns a copy of c using the given retry policy.
func (c *Client) WithRetry(attempts int, delay time.Duration) *Client {
	cp := *c
	cp.attempts = attempts
	cp.delay = delay
	return &cp
}

// Invoke runs a command remotely and returns its JSON result.
func (c *Client) Invoke(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	var r server.Response
	if err := c.do(ctx, http.MethodPost, "/invoke/"+url.PathEscape(name), args, &r); err != nil {
		return nil, err
	}
	return r.Result, nil
}

// Commands lists the commands the server exposes.
func (c *Client) Commands(ctx context.Context) ([]string, error) {
	var body struct {
		Commands []string `json:"commands"`
	}
	if err := c.do(ctx, http.MethodGet, "/commands", nil, &body); err != nil {
		return nil, err
	}
	return body.Commands, nil
}

// do sends one request under the retry policy and decodes a 200 body into
// out. Other statuses become *errors.Error values; 5xx and transport
// failures are retried.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) error {
	endpoint := c.baseURL + path

	return httputil.Retry(ctx, c.attempts, c.delay, func() error {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "build request")
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeUnavailable, err, "%s %s", method, endpoint)}
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeUnavailable, err, "read response")}
		}

		if resp.StatusCode != http.StatusOK {
			rerr := decodeError(resp.StatusCode, data)
			if resp.StatusCode >= http.StatusInternalServerError {
				return &httputil.RetryableError{Err: rerr}
			}
			return rerr
		}

		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "decode response")
		}
		return nil
	})
}

func decodeError(status int, body []byte) error {
	var eb server.ErrorBody
	if err := json.Unmarshal(body, &eb); err != nil || eb.Error.Code == "" {
		return errors.New(errors.ErrCodeInternal, "server returned %s", http.StatusText(status))
	}
	return &errors.Error{Code: eb.Error.Code, Message: eb.Error.Message}
}

// String implements fmt.Stringer.
func (c *Client) String() string {
	return fmt.Sprintf("client(%s)", c.baseURL)
}
