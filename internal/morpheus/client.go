// Package morpheus fetches analysis transcripts from a Morpheus HTTP
// server.
package morpheus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cours-de-latin/morphkit"
	"github.com/cours-de-latin/morphkit/internal/config"
)

const defaultMaxTranscriptBytes = 4 << 20

// ErrTranscriptTooLarge is returned for a transcript above the size limit.
var ErrTranscriptTooLarge = errors.New("morpheus: transcript too large")

// StatusError is returned when the server answers with a status that is
// not retried.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("morpheus: unexpected status %d", e.Code)
}

// Client fetches transcripts. It is safe for concurrent use.
type Client struct {
	endpoint   string
	query      string
	retries    int
	delay      time.Duration
	maxBytes   int64
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its Timeout is left
// as given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMaxTranscriptBytes bounds the size of an accepted transcript.
func WithMaxTranscriptBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l.With("adapter", "morpheus")
		}
	}
}

// New creates a client for cfg. The endpoint must be "host:port".
func New(cfg config.MorpheusConfig, opts ...Option) (*Client, error) {
	if err := config.ValidateEndpoint(cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("morpheus: %w", err)
	}
	if cfg.RetryAttempts < 0 {
		return nil, fmt.Errorf("morpheus: retry attempts must be >= 0 (got %d)", cfg.RetryAttempts)
	}
	c := &Client{
		endpoint:   cfg.Endpoint,
		query:      outputQuery(cfg.Output),
		retries:    cfg.RetryAttempts,
		delay:      max(cfg.RetryDelay.Std(), 0),
		maxBytes:   defaultMaxTranscriptBytes,
		httpClient: &http.Client{Timeout: cfg.Timeout.Std()},
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// outputQuery selects the Morpheus output options. Full output carries the
// derivational lines as well as the compact ones.
func outputQuery(output string) string {
	if strings.EqualFold(output, "compact") {
		return "opts=n"
	}
	return "opts=d?opts=n"
}

// escapeWord percent-encodes every byte outside the unreserved set,
// including "/" and "=" which are significant in betacode.
func escapeWord(word string) string {
	return strings.ReplaceAll(url.QueryEscape(word), "+", "%20")
}

// URL returns the request URL for word.
func (c *Client) URL(word string, lang morphkit.Language) string {
	return "http://" + c.endpoint + "/" + string(lang) + "/" + escapeWord(word) + "?" + c.query
}

// FetchTranscript returns the raw transcript for word. Network errors and
// 5xx answers are retried up to the configured number of times.
func (c *Client) FetchTranscript(ctx context.Context, word string, lang morphkit.Language) (string, error) {
	if lang != morphkit.Greek && lang != morphkit.Latin {
		return "", fmt.Errorf("morpheus: unsupported language %q", lang)
	}
	reqURL := c.URL(word, lang)

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			c.log.WarnContext(ctx, "morpheus retry",
				slog.String("word", word),
				slog.Int("attempt", attempt),
				slog.String("reason", lastErr.Error()),
			)
			if err := sleep(ctx, c.delay); err != nil {
				return "", fmt.Errorf("morpheus: %w", err)
			}
		}

		body, retry, err := c.do(ctx, reqURL)
		if err == nil {
			c.log.DebugContext(ctx, "morpheus response",
				slog.String("word", word),
				slog.String("language", string(lang)),
				slog.Int("bytes", len(body)),
			)
			return body, nil
		}
		if !retry || ctx.Err() != nil {
			return "", err
		}
		lastErr = err
	}

	c.log.ErrorContext(ctx, "morpheus request failed",
		slog.String("word", word),
		slog.Int("attempts", c.retries+1),
		slog.String("error", lastErr.Error()),
	)
	return "", fmt.Errorf("morpheus: %d attempts failed: %w", c.retries+1, lastErr)
}

// do performs a single request. The boolean reports whether the failure
// may be retried.
func (c *Client) do(ctx context.Context, reqURL string) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", false, fmt.Errorf("morpheus: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("morpheus: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", true, &StatusError{Code: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", false, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return "", true, fmt.Errorf("morpheus: read body: %w", err)
	}
	if int64(len(body)) > c.maxBytes {
		return "", false, fmt.Errorf("%w: more than %d bytes", ErrTranscriptTooLarge, c.maxBytes)
	}
	return string(body), false, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// IsStatus reports whether err carries the given HTTP status.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

var _ morphkit.Fetcher = (*Client)(nil)
