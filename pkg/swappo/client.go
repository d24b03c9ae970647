package swappo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/models"
)

const HeaderRequestID = "X-Request-Id"

// maxBodySize caps how much of a response body is kept in memory.
const maxBodySize = 1 << 20

// Client talks HTTP to a single Swappo service.
type Client struct {
	name       string
	baseURL    *url.URL
	httpClient *http.Client
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

type RequestOption func(req *http.Request)

// WithBearer attaches the token as a bearer credential. An empty token adds nothing.
func WithBearer(token models.Token) RequestOption {
	return func(req *http.Request) {
		if h := token.AuthorizationHeader(); h != "" {
			req.Header.Set("Authorization", h)
		}
	}
}

func NewClient(endpoint models.ServiceEndpoint, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(endpoint.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid %s base url %q: %w", endpoint.Name, endpoint.BaseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{name: endpoint.Name, baseURL: u, httpClient: httpClient}, nil
}

func (c *Client) Name() string {
	return c.name
}

// URL returns the absolute URL for path. An empty path is the base URL itself.
func (c *Client) URL(path string) string {
	if path == "" {
		return c.baseURL.String()
	}
	return c.baseURL.JoinPath(path).String()
}

// Get issues a GET request on path.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, opts...)
}

// PostJSON issues a POST request on path with body encoded as JSON.
func (c *Client) PostJSON(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body, opts...)
}

// Do sends a request and reads the whole response. Any returned error is a
// transport-level failure; HTTP status codes are left to the caller.
func (c *Client) Do(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	for _, o := range opts {
		o(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s %s: %w", c.name, method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%s %s %s: failed to read response: %w", c.name, method, req.URL.Path, err)
	}

	zap.S().Named("swappo_client").Debugw("request done",
		"service", c.name, "method", method, "path", req.URL.Path,
		"status", resp.StatusCode, "request_id", requestID)

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}
