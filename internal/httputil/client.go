package httputil

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/muleops/exchange-cli/util/common/errors"
)

// Client is a util for common HTTP operations against JSON endpoints.
// Use Do instead if those methods can not meet your requirement.
type Client struct {
	modifiers []Modifier
	client    *retryablehttp.Client
}

// NewClient creates an instance of Client. A nil rc gets a default
// retryable client with retries disabled; modifiers run against every
// request before it is sent.
func NewClient(rc *retryablehttp.Client, modifiers ...Modifier) *Client {
	client := &Client{
		client: rc,
	}
	if client.client == nil {
		client.client = DefaultRetryableClient()
	}
	if len(modifiers) > 0 {
		client.modifiers = modifiers
	}
	return client
}

// DefaultRetryableClient returns the shared client configuration: no
// retries, 30s request timeout, zerolog-backed internal logging.
func DefaultRetryableClient() *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	// Surface the final response instead of a synthetic "giving up" error
	// so status handling stays with the caller.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.HTTPClient = &http.Client{
		Transport: GetHTTPTransport(),
		Timeout:   30 * time.Second,
	}
	rc.Logger = leveledLogger{logger: log.Logger}
	return rc
}

// Do applies the modifier chain and sends the request.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	for _, m := range c.modifiers {
		if err := m.Modify(req); err != nil {
			return nil, err
		}
	}
	rreq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, err
	}
	return c.client.Do(rreq)
}

// Get issues a GET and, when v is given, decodes the JSON response body
// into v[0].
func (c *Client) Get(ctx context.Context, url string, v ...interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	data, err := c.do(req)
	if err != nil {
		return err
	}

	if len(v) == 0 {
		return nil
	}
	return json.Unmarshal(data, v[0])
}

// GetStream issues a GET and returns the raw response for streaming
// consumers. The caller owns resp.Body. Non-2xx statuses are returned as
// *errors.StatusError with the body drained.
func (c *Client) GetStream(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, errors.NewStatusError(url, resp.StatusCode, string(body))
	}
	return resp, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewStatusError(req.URL.String(), resp.StatusCode, string(data))
	}
	return data, nil
}

// NewLeveledLogger adapts a zerolog logger to retryablehttp's
// LeveledLogger.
func NewLeveledLogger(logger zerolog.Logger) retryablehttp.LeveledLogger {
	return leveledLogger{logger: logger}
}

// leveledLogger adapts zerolog to retryablehttp's LeveledLogger.
type leveledLogger struct {
	logger zerolog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}
