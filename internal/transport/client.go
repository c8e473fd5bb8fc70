// Package transport implements the typed HTTP request executor every
// resource service runs through. It builds requests against a
// configured base URL, attaches the bearer token, and maps each
// response to exactly one member of the error taxonomy. No retries are
// attempted at this layer; retry policy belongs to the caller.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/khoi-stripe/danddy/internal/errors"
	"github.com/khoi-stripe/danddy/internal/pkg/idgen"
)

const defaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer token, if any. The session
// manager's credential store satisfies this.
type TokenSource interface {
	Token() (string, bool)
}

// Config holds the dependencies for the transport client
type Config struct {
	// BaseURL is the backend root, e.g. "https://api.danddy.app"
	BaseURL string
	// Tokens supplies bearer tokens for authenticated requests. Optional;
	// without it every call goes out unauthenticated.
	Tokens TokenSource
	// HTTPClient defaults to a client with a 30s timeout
	HTTPClient *http.Client
	// IDGenerator stamps X-Request-ID headers. Optional.
	IDGenerator idgen.Generator
	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Validate ensures required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BaseURL", c.BaseURL, vb)
	return vb.Build()
}

// Client executes typed HTTP/JSON requests against the backend
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	idGen      idgen.Generator
	logger     *slog.Logger
}

// New creates a new transport client
func New(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tokens:     cfg.Tokens,
		httpClient: httpClient,
		idGen:      cfg.IDGenerator,
		logger:     logger,
	}, nil
}

// Request describes one backend call
type Request struct {
	Method string
	// Path is the endpoint path, e.g. "/characters/"
	Path string
	// Body, when non-nil, is serialized to JSON
	Body any
	// NoAuth skips the Authorization header even when a token exists
	NoAuth bool
}

// Do executes the request and decodes the response body into T.
// Exactly one taxonomy error is returned per failed call.
func Do[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var zero T

	body, status, err := c.roundTrip(ctx, req)
	if err != nil {
		return zero, err
	}

	var decoded T
	if err := json.Unmarshal(body, &decoded); err != nil {
		c.logger.WarnContext(ctx, "response decoding failed",
			"method", req.Method, "path", req.Path, "status", status, "error", err)
		return zero, errors.Decoding("failed to decode response")
	}
	return decoded, nil
}

// Execute runs a request and discards any response body. Used for
// delete endpoints that return an empty 2xx.
func (c *Client) Execute(ctx context.Context, req Request) error {
	_, _, err := c.roundTrip(ctx, req)
	return err
}

// roundTrip performs the HTTP exchange and classifies the outcome.
// On success it returns the raw body and status.
func (c *Client) roundTrip(ctx context.Context, req Request) ([]byte, int, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "request failed",
			"method", req.Method, "path", req.Path, "error", err)
		return nil, 0, errors.Networkf("network error: %v", err)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.Networkf("network error: %v", err)
	}

	c.logger.DebugContext(ctx, "request completed",
		"method", req.Method, "path", req.Path, "status", resp.StatusCode)

	if err := classify(resp.StatusCode, body); err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := c.baseURL + req.Path
	if _, err := url.ParseRequestURI(target); err != nil {
		return nil, errors.InvalidURLf("invalid URL: %s", target)
	}

	var bodyReader io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, errors.InvalidURLf("invalid URL: %s", target)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.idGen != nil {
		httpReq.Header.Set("X-Request-ID", c.idGen.Generate())
	}

	if !req.NoAuth && c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return httpReq, nil
}

// classify maps a status and body to the taxonomy. 2xx yields nil.
// 4xx responses may carry a {"detail": "..."} body, surfaced verbatim.
func classify(status int, body []byte) error {
	switch code := errors.CodeForStatus(status); code {
	case errors.CodeOK:
		return nil
	case errors.CodeUnauthorized:
		return errors.Unauthorized("unauthorized - please log in again")
	case errors.CodeClientError:
		if detail := errorDetail(body); detail != "" {
			return errors.ClientError(detail)
		}
		return errors.ClientErrorf("client error: %d", status)
	case errors.CodeServerError:
		return errors.ServerErrorf("server error: %d", status)
	default:
		return errors.Decodingf("unexpected response status: %d", status)
	}
}

// errorDetail extracts the server-supplied detail message, if present
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}
