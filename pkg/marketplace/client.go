package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Config configures the marketplace admin API client.
type Config struct {
	// BaseURL is the admin API root, e.g. "https://api.example.com/api/admin".
	BaseURL string
	// CustomerBaseURL points at the customer service, which historically runs
	// on its own host. Defaults to BaseURL.
	CustomerBaseURL string
	// ImageOrigin is the origin relative image paths resolve against.
	ImageOrigin string
	HTTPClient  *http.Client
	// Tokens stores the bearer token between sessions. Defaults to an
	// in-memory store.
	Tokens    TokenStore
	UserAgent string
}

// Client talks to the marketplace admin backend. Every endpoint is invoked
// with POST, reads included; that is the backend's contract and changing it
// requires changing the backend first.
type Client struct {
	baseURL         string
	customerBaseURL string
	client          *http.Client
	tokens          TokenStore
	userAgent       string
	images          ImageResolver
}

// New builds a client from the config, applying defaults for everything
// optional.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("marketplace: base url is required")
	}
	customerBase := cfg.CustomerBaseURL
	if customerBase == "" {
		customerBase = cfg.BaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}
	return &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		customerBaseURL: strings.TrimRight(customerBase, "/"),
		client:          httpClient,
		tokens:          tokens,
		userAgent:       cfg.UserAgent,
		images:          ImageResolver{Origin: cfg.ImageOrigin},
	}, nil
}

// Images returns the resolver for image paths the backend hands out.
func (c *Client) Images() ImageResolver {
	return c.images
}

// APIError is a backend-reported failure. Message carries the envelope's
// message field when the backend supplied one.
type APIError struct {
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("marketplace: %s (status %d)", e.Message, e.HTTPStatus)
}

// envelope is the fixed response shape every endpoint returns.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// post sends one request against the admin host and decodes data into target.
func (c *Client) post(ctx context.Context, path string, payload, target any) error {
	return c.do(ctx, c.baseURL, path, payload, target)
}

// postCustomer is post against the customer host.
func (c *Client) postCustomer(ctx context.Context, path string, payload, target any) error {
	return c.do(ctx, c.customerBaseURL, path, payload, target)
}

func (c *Client) do(ctx context.Context, base, path string, payload, target any) error {
	body, contentType, err := encodeBody(payload)
	if err != nil {
		return fmt.Errorf("marketplace: encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+path, body)
	if err != nil {
		return fmt.Errorf("marketplace: build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	// A missing token just omits the header; the backend will reject the
	// request itself.
	if token, err := c.tokens.Load(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("marketplace: http request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := env.Message
		if message == "" {
			message = "request failed"
		}
		return &APIError{HTTPStatus: resp.StatusCode, Message: message}
	}
	if decodeErr != nil {
		return fmt.Errorf("marketplace: decode response: %w", decodeErr)
	}
	if target == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return fmt.Errorf("marketplace: decode data: %w", err)
	}
	return nil
}

// pageEnvelope is the data shape list endpoints return.
type pageEnvelope[T any] struct {
	Records      []T `json:"records"`
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
}

// listRequest is the common body sent with every listing call.
type listRequest struct {
	Page    int               `json:"page"`
	PerPage int               `json:"perPage"`
	Search  string            `json:"search,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
}
