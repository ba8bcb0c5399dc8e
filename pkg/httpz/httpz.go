package httpz

import (
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout covers the whole exchange including the body read. Dataset
// files are a few hundred megabytes, so it is deliberately generous.
const DefaultTimeout = time.Minute * 5

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client wraps an HTTPClient with a non-2xx-is-an-error contract for
// single-shot file downloads. Failed downloads are fatal to the run, so there
// is no retry loop here.
type Client struct {
	client  HTTPClient
	timeout time.Duration
}

// ClientOption is a function that can be used to configure a Client
type ClientOption func(*Client)

// NewClient creates a new download client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}

	return c
}

// WithTimeout sets the total request timeout for the default underlying client
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient sets the underlying http client. It takes precedence over WithTimeout.
func WithHTTPClient(client HTTPClient) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// Do executes the HTTP request. Any status other than 200 OK is returned as an
// error and the response body is closed.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s for %s", resp.Status, req.URL)
	}

	return resp, nil
}
