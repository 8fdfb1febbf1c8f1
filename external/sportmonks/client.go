package sportmonks

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/flashgoal/internal/platform/logging"
	"github.com/riskibarqy/flashgoal/internal/usecase"
)

const (
	DefaultBaseURL  = "https://api.sportmonks.com/v3/football"
	DefaultTimezone = "Europe/Copenhagen"

	defaultTimeout          = 20 * time.Second
	defaultMaxResponseBytes = 6 << 20
	includeSeparator        = ";"
	abbreviateLimit         = 240
)

var apiTokenParamRegex = regexp.MustCompile(`api_token=[^&\s"']+`)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	Timezone   string
	Timeout    time.Duration
	// MaxResponseBytes caps a response body. Zero means 6 MiB.
	MaxResponseBytes int64
	Logger           *logging.Logger
}

// Client issues authenticated GET requests against the SportMonks football
// API. It holds no mutable state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	timezone   string
	maxBytes   int64
	logger     *logging.Logger
}

var _ usecase.DataSource = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timezone := strings.TrimSpace(cfg.Timezone)
	if timezone == "" {
		timezone = DefaultTimezone
	}

	maxBytes := cfg.MaxResponseBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxResponseBytes
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		timezone:   timezone,
		maxBytes:   maxBytes,
		logger:     logger.Named("sportmonks"),
	}
}

// Fetch performs one GET and decodes the JSON body into target.
// Every call is a fresh round trip.
func (c *Client) Fetch(ctx context.Context, req usecase.APIRequest, target any) error {
	fullURL, err := c.buildURL(req)
	if err != nil {
		return err
	}

	raw, err := c.executeRequest(ctx, fullURL)
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		decodeErr := &DecodeError{Endpoint: req.Endpoint, Cause: err}
		c.logger.WarnContext(ctx, "sportmonks decode failed", "url", redactAPIURL(fullURL), "error", decodeErr)
		return decodeErr
	}
	return nil
}

func (c *Client) buildURL(req usecase.APIRequest) (string, error) {
	endpoint := strings.Trim(strings.TrimSpace(req.Endpoint), "/")
	if endpoint == "" {
		return "", crerr.Wrap(ErrInvalidRequest, "empty endpoint")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.WriteString(c.baseURL)
	_ = buf.WriteByte('/')
	_, _ = buf.WriteString(endpoint)

	parsed, err := url.Parse(buf.String())
	if err != nil {
		return "", crerr.Wrapf(ErrInvalidRequest, "endpoint=%q: %v", endpoint, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", crerr.Wrapf(ErrInvalidRequest, "endpoint=%q: base url is not absolute", endpoint)
	}

	values := parsed.Query()
	for key, value := range req.Filters {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values.Set(key, value)
	}
	if len(req.Includes) > 0 {
		values.Set("include", strings.Join(req.Includes, includeSeparator))
	}
	values.Set("api_token", c.token)
	parsed.RawQuery = values.Encode()

	return parsed.String(), nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrapf(ErrInvalidRequest, "build request: %s", c.sanitize(err.Error()))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Timezone", c.timezone)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, crerr.Wrap(ctxErr, "sportmonks request aborted")
		}
		out := crerr.Wrapf(ErrUnknown, "send request: %s", c.sanitize(err.Error()))
		c.logger.WarnContext(ctx, "sportmonks request failed", "url", redactAPIURL(fullURL), "error", out)
		return nil, out
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, c.maxBytes+1)); err != nil {
		out := crerr.Wrapf(ErrUnknown, "read response body: %s", c.sanitize(err.Error()))
		c.logger.WarnContext(ctx, "sportmonks request failed", "url", redactAPIURL(fullURL), "error", out)
		return nil, out
	}
	if int64(buf.Len()) > c.maxBytes {
		out := crerr.Wrapf(ErrResponseTooLarge, "response exceeds %d bytes", c.maxBytes)
		c.logger.WarnContext(ctx, "sportmonks request failed",
			"url", redactAPIURL(fullURL),
			"status", resp.StatusCode,
			"error", out,
		)
		return nil, out
	}
	raw := append([]byte(nil), buf.B...)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		out := &HTTPError{StatusCode: resp.StatusCode, Body: raw}
		c.logger.WarnContext(ctx, "sportmonks request failed",
			"url", redactAPIURL(fullURL),
			"status", resp.StatusCode,
			"body", c.sanitize(abbreviateBody(raw)),
		)
		return nil, out
	}

	c.logger.DebugContext(ctx, "sportmonks request done",
		"url", redactAPIURL(fullURL),
		"status", resp.StatusCode,
		"bytes", len(raw),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return raw, nil
}

func (c *Client) sanitize(value string) string {
	return sanitizeSensitiveText(value, c.token)
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	value = apiTokenParamRegex.ReplaceAllString(value, "api_token=REDACTED")
	return value
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return sanitizeSensitiveText(rawURL, "")
	}
	query := parsed.Query()
	if query.Has("api_token") {
		query.Set("api_token", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	return abbreviate(string(body))
}

func abbreviate(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= abbreviateLimit {
		return text
	}
	return text[:abbreviateLimit] + "..."
}
