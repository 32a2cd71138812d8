package exchange

import (
	"io"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/muleops/exchange-cli/internal/httputil"
)

// Default endpoints for the Anypoint Exchange registry.
const (
	DefaultBaseURL = "https://anypoint.mulesoft.com/exchange/api/v2"
	DefaultWebURL  = "https://anypoint.mulesoft.com/exchange"
)

// ProgressFunc wraps a download body so the transfer can be reported to
// the terminal. The returned func is called when the transfer settles.
type ProgressFunc func(contentLength int64, r io.Reader, name string) (io.Reader, func())

// Client talks to the Exchange registry and to the archive hosts its
// metadata points at. Bearer tokens are accepted as opaque strings and
// attached per request; archive downloads carry no credentials.
type Client struct {
	BaseURL string
	WebURL  string

	rc       *retryablehttp.Client
	download *httputil.Client
	sink     WarningSink
	progress ProgressFunc
	logger   zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the registry API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.BaseURL = baseURL }
}

// WithWebURL overrides the human-facing registry URL used in warnings.
func WithWebURL(webURL string) Option {
	return func(c *Client) { c.WebURL = webURL }
}

// WithWarningSink replaces the default zerolog-backed sink.
func WithWarningSink(sink WarningSink) Option {
	return func(c *Client) { c.sink = sink }
}

// WithProgress reports download transfers through fn.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Client) { c.progress = fn }
}

// WithRetryableClient replaces the underlying HTTP client, mainly for
// tests that need a shorter timeout.
func WithRetryableClient(rc *retryablehttp.Client) Option {
	return func(c *Client) { c.rc = rc }
}

// WithLogger replaces the package-global logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates an Exchange client against the public registry.
func NewClient(opts ...Option) *Client {
	c := &Client{
		BaseURL: DefaultBaseURL,
		WebURL:  DefaultWebURL,
		logger:  log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rc == nil {
		c.rc = httputil.DefaultRetryableClient()
		c.rc.Logger = httputil.NewLeveledLogger(c.logger)
	}
	if c.sink == nil {
		c.sink = NewLogWarningSink(c.logger)
	}
	c.download = httputil.NewClient(c.rc)
	return c
}

// authorized returns an HTTP client that attaches token as a bearer
// credential to every request.
func (c *Client) authorized(token string) *httputil.Client {
	return httputil.NewClient(c.rc, httputil.NewBearerAuthorizer(token))
}
