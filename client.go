package wandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public wandbox instance.
const DefaultBaseURL = "https://wandbox.org"

const (
	compilePath = "/api/compile.json"
	listPath    = "/api/list.json"

	defaultTimeout = 30 * time.Second

	// responses larger than this are treated as malformed rather than
	// buffered without bound.
	maxResponseBytes = 8 * 1024 * 1024
)

// Client is a handle onto a single wandbox instance. The zero configuration
// talks to wandbox.org. A Client is safe for concurrent use; every dispatch
// is independent and shares no mutable state.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different wandbox instance, e.g. a
// self-hosted deployment or a mock endpoint under test.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying http client entirely. The caller
// keeps ownership of timeouts and transport configuration.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTimeout bounds every dispatch, defaulting to thirty seconds. Ignored
// when WithHTTPClient is also supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) { c.userAgent = userAgent }
}

func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: "wandbox-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return client
}

// Compile validates the builder, serializes it and performs a single
// best-effort call against the compile endpoint. There are no retries; a
// transport failure surfaces as a NetworkError and a response that does not
// decode into a CompilationResult surfaces as a ParseError.
func (c *Client) Compile(ctx context.Context, builder *CompilationBuilder) (*CompilationResult, error) {
	payload, err := builder.payload()

	if err != nil {
		return nil, err
	}

	requestID := uuid.New().String()

	log.Debug().
		Str("request_id", requestID).
		Str("compiler", payload.Compiler).
		Bool("save", payload.Save).
		Msg("dispatching compilation request")

	body, err := c.post(ctx, compilePath, payload)

	if err != nil {
		return nil, err
	}

	result := &CompilationResult{}

	if decodeErr := json.Unmarshal(body, result); decodeErr != nil {
		return nil, &ParseError{Err: errors.Wrap(decodeErr, "unexpected compile response body")}
	}

	log.Debug().
		Str("request_id", requestID).
		Str("status", result.Status).
		Msg("compilation request complete")

	return result, nil
}

// List fetches every compiler the instance currently offers. Most callers
// want LoadCatalog instead, which also groups the listing by language.
func (c *Client) List(ctx context.Context) ([]Compiler, error) {
	body, err := c.get(ctx, listPath)

	if err != nil {
		return nil, err
	}

	var compilers []Compiler

	if decodeErr := json.Unmarshal(body, &compilers); decodeErr != nil {
		return nil, &ParseError{Err: errors.Wrap(decodeErr, "unexpected list response body")}
	}

	return compilers, nil
}

// LoadCatalog fetches the compiler listing and organizes it into a queryable
// catalog, applying any exclusions before the catalog becomes visible.
func (c *Client) LoadCatalog(ctx context.Context, opts ...CatalogOption) (*Catalog, error) {
	compilers, err := c.List(ctx)

	if err != nil {
		return nil, err
	}

	return NewCatalog(compilers, opts...), nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)

	if err != nil {
		return nil, &ParseError{Err: errors.Wrap(err, "failed to encode request body")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))

	if err != nil {
		return nil, &NetworkError{Err: errors.Wrap(err, "failed to build request")}
	}

	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	return c.do(req)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)

	if err != nil {
		return nil, &NetworkError{Err: errors.Wrap(err, "failed to build request")}
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)

	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	defer resp.Body.Close()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	if readErr != nil {
		return nil, &NetworkError{Err: errors.Wrap(readErr, "failed to read response body")}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &NetworkError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s %s replied %s", req.Method, req.URL.Path, resp.Status),
		}
	}

	return body, nil
}
