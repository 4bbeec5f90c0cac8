package pokeapi

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the public PokeAPI endpoint
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// DefaultTimeout bounds each upstream request
	DefaultTimeout = 10 * time.Second
)

// Config holds PokeAPI connection settings. It is read-only after
// construction; the client never mutates it.
type Config struct {
	// BaseURL is the API endpoint (e.g., https://pokeapi.co/api/v2)
	BaseURL string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to the API
	UserAgent string
}

// LoadConfig loads configuration from environment variables,
// falling back to the public PokeAPI defaults.
func LoadConfig() Config {
	baseURL := os.Getenv("POKEAPI_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := DefaultTimeout
	if t := os.Getenv("POKEAPI_TIMEOUT"); t != "" {
		if seconds, err := strconv.Atoi(t); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	userAgent := os.Getenv("POKEAPI_USER_AGENT")
	if userAgent == "" {
		userAgent = "pokeapi-mcp-server/1.0 (github.com/olgasafonova/pokeapi-mcp-server)"
	}

	return Config{
		BaseURL:   baseURL,
		Timeout:   timeout,
		UserAgent: userAgent,
	}
}
