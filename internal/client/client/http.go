package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/brewkeeper/internal/client/wire"
	"github.com/dmitrijs2005/brewkeeper/internal/common"
	"github.com/dmitrijs2005/brewkeeper/internal/logging"
)

const maxErrorBody = 1 << 20

// HTTPClient implements Client over the recipe REST API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
	log        logging.Logger
}

type Option func(*HTTPClient)

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.httpClient.Timeout = d }
}

// WithTransport replaces the round tripper, e.g. with an instrumented one.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) { c.httpClient.Transport = rt }
}

// WithRateLimit throttles outgoing requests; rps <= 0 disables it.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *HTTPClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     TokenSourceFunc(func() string { return "" }),
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// request describes one API call.
type request struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
	auth   bool
	// denied replaces the server message on 403.
	denied string
	out    any
	// decode, when set, is used instead of json.Unmarshal into out.
	decode func([]byte) error
}

func (c *HTTPClient) do(ctx context.Context, r request) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: %w", r.op, err)
		}
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", r.op, err)
		}
		body = bytes.NewReader(b)
	}

	requestID := common.NewRequestID()
	ctx = logging.WithRequestID(ctx, requestID)

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return fmt.Errorf("%s: %w", r.op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.auth {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", r.op, ctxErr)
		}
		c.log.Warn(ctx, "api request failed", "op", r.op, "error", err)
		return &APIError{Op: r.op, Message: MsgUnavailable, Err: ErrUnavailable}
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api request",
		"op", r.op,
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(r, resp)
	}

	if r.out == nil && r.decode == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Op: r.op, Status: resp.StatusCode, Message: MsgUnavailable, Err: ErrUnavailable}
	}
	if r.decode != nil {
		err = r.decode(data)
	} else {
		err = json.Unmarshal(data, r.out)
	}
	if err != nil {
		return fmt.Errorf("%s: decode response: %w", r.op, err)
	}
	return nil
}

func (c *HTTPClient) statusError(r request, resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	fallback := http.StatusText(resp.StatusCode)
	if fallback == "" {
		fallback = ErrRequestFailed.Error()
	}
	msg := wire.DecodeErrorMessage(data, fallback)
	if resp.StatusCode == http.StatusForbidden && r.denied != "" {
		msg = r.denied
	}

	return &APIError{
		Op:      r.op,
		Status:  resp.StatusCode,
		Message: msg,
		Err:     sentinelFor(resp.StatusCode),
	}
}

func identity(op, username string) error {
	if username == "" {
		return &APIError{Op: op, Message: ErrNoSession.Error(), Err: ErrNoSession}
	}
	return nil
}

func userQuery(username string) url.Values {
	return url.Values{"username": []string{username}}
}

func seg(s string) string { return url.PathEscape(s) }

// IsUnavailable reports whether err means the API could not be reached.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
