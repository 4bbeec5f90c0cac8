package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/olgasafonova/pokeapi-mcp-server/internal/apierrors"
	"github.com/olgasafonova/pokeapi-mcp-server/metrics"
	"github.com/olgasafonova/pokeapi-mcp-server/tracing"
)

// searchIndexLimit is the page size used to fetch the full name index
// for search_pokemon. Large enough to cover the whole Pokedex.
const searchIndexLimit = 2000

// Client provides access to the PokeAPI. Configuration is immutable
// after construction, so a single Client is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithBaseURL overrides the API base URL (for testing)
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// NewClient creates a new PokeAPI client from the given configuration
func NewClient(cfg Config, opts ...ClientOption) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the configured API endpoint
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetPokemonList retrieves one page of the Pokemon index. The limit is
// clamped to [1,100] (default 20) and the offset to >= 0; the upstream
// body is returned unchanged.
func (c *Client) GetPokemonList(ctx context.Context, limit, offset int) (map[string]any, error) {
	limit = ClampLimit(limit, DefaultListLimit)
	offset = ClampOffset(offset)

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	body, status, err := c.doRequest(ctx, "list", "/pokemon", params)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(status); err != nil {
		return nil, err
	}

	return decodeObject(body)
}

// GetPokemon retrieves full details for a Pokemon by name. The name is
// trimmed and lower-cased before the lookup.
func (c *Client) GetPokemon(ctx context.Context, name string) (map[string]any, error) {
	name = NormalizeName(name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	body, status, err := c.doRequest(ctx, "get", "/pokemon/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, apierrors.NewNotFoundError(name)
	}
	if err := checkStatus(status); err != nil {
		return nil, err
	}

	return decodeObject(body)
}

// GetPokemonByID retrieves full details for a Pokemon by Pokedex ID.
// An ID that is not a positive integer fails validation before any
// network call is made.
func (c *Client) GetPokemonByID(ctx context.Context, id int) (map[string]any, error) {
	if err := ValidatePokemonID(id); err != nil {
		return nil, err
	}

	body, status, err := c.doRequest(ctx, "get", "/pokemon/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, apierrors.NewNotFoundByIDError(id)
	}
	if err := checkStatus(status); err != nil {
		return nil, err
	}

	return decodeObject(body)
}

// SearchPokemon fetches the full name index and returns entries whose
// name contains the query as a case-insensitive substring, truncated
// to limit (default 10).
func (c *Client) SearchPokemon(ctx context.Context, query string, limit int) (map[string]any, error) {
	limit = ClampLimit(limit, DefaultSearchLimit)
	needle := strings.ToLower(strings.TrimSpace(query))

	params := url.Values{}
	params.Set("limit", strconv.Itoa(searchIndexLimit))
	params.Set("offset", "0")

	body, status, err := c.doRequest(ctx, "index", "/pokemon", params)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(status); err != nil {
		return nil, err
	}

	var index ListResponse
	if err := json.Unmarshal(body, &index); err != nil {
		return nil, &apierrors.DecodeError{Err: err}
	}

	matches := make([]NamedResource, 0, limit)
	for _, entry := range index.Results {
		if !strings.Contains(strings.ToLower(entry.Name), needle) {
			continue
		}
		matches = append(matches, entry)
		if len(matches) >= limit {
			break
		}
	}

	return map[string]any{
		"query":   query,
		"count":   len(matches),
		"results": matches,
	}, nil
}

// doRequest performs one HTTP GET against the API and returns the raw
// body and status code. Transport failures are wrapped as
// TransportError; status handling is left to the caller.
func (c *Client) doRequest(ctx context.Context, endpoint, path string, params url.Values) ([]byte, int, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	ctx, span := tracing.StartSpan(ctx, "pokeapi.request")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Seconds()

	if err != nil {
		metrics.RecordUpstreamCall(endpoint, duration, 0)
		metrics.RecordUpstreamError(endpoint, "transport")
		tracing.AddUpstreamAttributes(span, endpoint, 0)
		tracing.RecordError(span, err)
		c.logger.Warn("API request failed",
			"endpoint", endpoint,
			"url", reqURL,
			"error", err)
		return nil, 0, &apierrors.TransportError{Err: err}
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		metrics.RecordUpstreamError(endpoint, "transport")
		return nil, 0, &apierrors.TransportError{Err: err}
	}

	metrics.RecordUpstreamCall(endpoint, duration, resp.StatusCode)
	tracing.AddUpstreamAttributes(span, endpoint, resp.StatusCode)
	c.logger.Debug("API request completed",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"bytes", len(body))

	return body, resp.StatusCode, nil
}

// checkStatus maps any non-2xx status to an UpstreamError. 404 cases
// the caller wants to report as not-found must be handled before this.
func checkStatus(status int) error {
	if status >= 200 && status < 300 {
		return nil
	}
	return &apierrors.UpstreamError{StatusCode: status}
}

// decodeObject parses a JSON object body, mapping parse failures to
// DecodeError so they surface as "Invalid response from API".
func decodeObject(body []byte) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, &apierrors.DecodeError{Err: err}
	}
	return obj, nil
}
