package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource yields the persisted bearer token. An empty token means the
// request goes out unauthenticated.
type TokenSource interface {
	Token() (string, error)
}

// Client talks to the CMS HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	tokens    TokenSource
	logger    *zap.Logger
	userAgent string
	newID     func() string
}

// Options configure a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenSource
	Logger  *zap.Logger
}

// RequestOptions tune a single request.
type RequestOptions struct {
	// Params are encoded into the query string. For GET requests the map is
	// emptied once the query has been built.
	Params map[string]any
	// SkipAuth suppresses the Authorization header even when a token exists.
	SkipAuth     bool
	ResponseType ResponseType
	Header       http.Header
	Body         any
}

const (
	defaultBaseURL   = "http://127.0.0.1:8080/"
	defaultUserAgent = "showcase/0.1"
	// DefaultTimeout bounds every request.
	DefaultTimeout = 10 * time.Second
	// BasePath is the path every request is resolved against.
	BasePath = "/"
)

var statusCodePattern = regexp.MustCompile(`status code (\d+)`)

// NewClient builds a Client. A zero Timeout uses DefaultTimeout.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		tokens:    opts.Tokens,
		logger:    logger.Named("cms"),
		userAgent: defaultUserAgent,
		newID:     func() string { return uuid.NewString() },
	}, nil
}

// BaseURL returns the resolved API base.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.http.Timeout
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, opts RequestOptions) (*Result, error) {
	return c.Request(ctx, http.MethodGet, path, opts)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, opts RequestOptions) (*Result, error) {
	opts.Body = body
	return c.Request(ctx, http.MethodPost, path, opts)
}

// Request performs one call and normalizes the outcome. Envelope rejections
// come back as *APIError; transport failures come back as the original error.
func (c *Client) Request(ctx context.Context, method, path string, opts RequestOptions) (*Result, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	out := &outgoing{
		method:    strings.ToUpper(strings.TrimSpace(method)),
		path:      path,
		params:    opts.Params,
		header:    opts.Header.Clone(),
		skipAuth:  opts.SkipAuth,
		requestID: c.newID(),
	}
	if out.header == nil {
		out.header = make(http.Header)
	}
	c.prepare(out)

	var body io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(payload)
		out.header.Set("Content-Type", "application/json")
	}

	reqURL, err := c.resolve(out)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, out.method, reqURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header = out.header
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", out.requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(out, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, c.fail(out, &StatusError{StatusCode: resp.StatusCode, Path: out.path})
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(out, err)
	}
	return c.interpret(out, payload, opts.ResponseType)
}

type outgoing struct {
	method    string
	path      string
	params    map[string]any
	header    http.Header
	skipAuth  bool
	requestID string
}

// prepare attaches credentials and folds GET params into the path.
func (c *Client) prepare(out *outgoing) {
	if !out.skipAuth && c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			c.logger.Debug("read token failed", zap.Error(err))
		}
		if token = strings.TrimSpace(token); token != "" {
			out.header.Set("Authorization", "Bearer "+token)
		}
	}

	if out.method == http.MethodGet && len(out.params) > 0 {
		query := encodeParams(out.params)
		sep := "?"
		if strings.Contains(out.path, "?") {
			sep = "&"
		}
		out.path += sep + query
		clear(out.params)
	}
}

func (c *Client) resolve(out *outgoing) (*url.URL, error) {
	rel, err := url.Parse(strings.TrimPrefix(out.path, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse path %q: %w", out.path, err)
	}
	if out.method != http.MethodGet && len(out.params) > 0 {
		extra := encodeParams(out.params)
		if rel.RawQuery == "" {
			rel.RawQuery = extra
		} else {
			rel.RawQuery += "&" + extra
		}
	}
	return c.baseURL.ResolveReference(rel), nil
}

// interpret turns a received body into a result or an envelope rejection.
func (c *Client) interpret(out *outgoing, payload []byte, responseType ResponseType) (*Result, error) {
	if responseType == ResponseBlob {
		return &Result{Code: CodeOK, Raw: payload}, nil
	}

	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		c.logger.Error("interface error",
			zap.String("path", out.path),
			zap.String("request_id", out.requestID),
			zap.Error(err))
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if env.Code == CodeOK {
		return &Result{Code: env.Code, Msg: env.Msg, Data: env.Data}, nil
	}

	apiErr := &APIError{Code: env.Code, Message: env.Text(), Path: out.path}
	fields := []zap.Field{
		zap.Int("code", env.Code),
		zap.String("message", apiErr.Message),
		zap.String("path", out.path),
		zap.String("request_id", out.requestID),
	}
	switch env.Code {
	case CodeUnauthorized:
		c.logger.Warn("session expired, please sign in again", fields...)
	case CodeServerError:
		c.logger.Error("system error", fields...)
	case CodeWarning:
		c.logger.Warn("warning", fields...)
	default:
		c.logger.Error("interface error", fields...)
	}
	return nil, apiErr
}

// fail logs a transport failure and hands back err untouched.
func (c *Client) fail(out *outgoing, err error) error {
	c.logger.Error("network request failed",
		zap.String("error", err.Error()),
		zap.String("path", out.path),
		zap.String("request_id", out.requestID))
	c.logger.Error(classifyFailure(err), zap.String("request_id", out.requestID))
	return err
}

func classifyFailure(err error) string {
	msg := err.Error()
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout(),
		strings.Contains(strings.ToLower(msg), "timeout"):
		return "interface request timed out"
	}
	if m := statusCodePattern.FindStringSubmatch(msg); m != nil {
		return "interface " + m[1] + " exception"
	}
	var opErr *net.OpError
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &opErr) && opErr.Op == "dial",
		errors.As(err, &dnsErr),
		strings.Contains(msg, "connection refused"),
		strings.EqualFold(msg, "network error"):
		return "backend connection error"
	}
	return "network request failed"
}

func encodeParams(params map[string]any) string {
	values := url.Values{}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		switch v := params[k].(type) {
		case nil:
		case string:
			values.Add(k, v)
		case []string:
			for _, item := range v {
				values.Add(k, item)
			}
		case int:
			values.Add(k, strconv.Itoa(v))
		case int64:
			values.Add(k, strconv.FormatInt(v, 10))
		case bool:
			values.Add(k, strconv.FormatBool(v))
		default:
			values.Add(k, fmt.Sprint(v))
		}
	}
	return values.Encode()
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, BasePath) {
		u.Path += BasePath
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
