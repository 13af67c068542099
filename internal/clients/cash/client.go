// Package cash provides a client for the broker's cash statements API
package cash

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/bobmcallan/stb/internal/common"
	"github.com/bobmcallan/stb/internal/interfaces"
	"github.com/bobmcallan/stb/internal/models"
)

const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultStatementsPath = "/api/cash/statements"
	DefaultItemPath       = "$.item"
	DefaultTimeout        = 30 * time.Second
	DefaultRateLimit      = 5 // requests per second
)

// ErrMalformedStatements is returned when the response item is missing or is
// not an object or a list of objects.
var ErrMalformedStatements = errors.New("malformed statements response")

// Client implements the CashClient interface
type Client struct {
	baseURL        string
	statementsPath string
	itemPath       string
	httpClient     *http.Client
	logger         *common.Logger
	limiter        *rate.Limiter
}

var _ interfaces.CashClient = (*Client)(nil)

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithStatementsPath sets the statements endpoint path
func WithStatementsPath(path string) ClientOption {
	return func(c *Client) {
		if path != "" {
			c.statementsPath = path
		}
	}
}

// WithItemPath sets the JSONPath locating the statements in the response
func WithItemPath(path string) ClientOption {
	return func(c *Client) {
		if path != "" {
			c.itemPath = path
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new statements client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:        DefaultBaseURL,
		statementsPath: DefaultStatementsPath,
		itemPath:       DefaultItemPath,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewClientFromConfig creates a client from the cash client config section
func NewClientFromConfig(cfg common.CashConfig, logger *common.Logger) *Client {
	return NewClient(
		WithBaseURL(cfg.BaseURL),
		WithStatementsPath(cfg.StatementsPath),
		WithItemPath(cfg.ItemPath),
		WithRateLimit(cfg.RateLimit),
		WithTimeout(cfg.GetTimeout()),
		WithLogger(logger),
	)
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cash API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// post performs a rate-limited JSON POST request
func (c *Client) post(ctx context.Context, path string, body interface{}, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", path).Msg("Cash API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(msg),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// FetchStatements retrieves statements for an account and date range
func (c *Client) FetchStatements(ctx context.Context, req models.StatementRequest) ([]models.CashStatement, error) {
	var resp interface{}
	if err := c.post(ctx, c.statementsPath, req, &resp); err != nil {
		return nil, err
	}

	item, err := jsonpath.Get(c.itemPath, resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedStatements, c.itemPath, err)
	}

	return Normalize(item)
}

// Normalize turns a response item into a statement list. A single object
// becomes a one-element list; a list is passed through in order.
func Normalize(item interface{}) ([]models.CashStatement, error) {
	switch v := item.(type) {
	case map[string]interface{}:
		return []models.CashStatement{models.CashStatement(v)}, nil
	case []interface{}:
		statements := make([]models.CashStatement, 0, len(v))
		for i, elem := range v {
			obj, ok := elem.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T", ErrMalformedStatements, i, elem)
			}
			statements = append(statements, models.CashStatement(obj))
		}
		return statements, nil
	default:
		return nil, fmt.Errorf("%w: item is %T", ErrMalformedStatements, item)
	}
}
