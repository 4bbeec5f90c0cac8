package pokeapi

import (
	"strings"

	"github.com/olgasafonova/pokeapi-mcp-server/internal/apierrors"
)

const (
	// MinLimit and MaxLimit bound the per-page result count
	MinLimit = 1
	MaxLimit = 100

	// DefaultListLimit applies when the list tool omits a limit
	DefaultListLimit = 20

	// DefaultSearchLimit applies when the search tool omits a limit
	DefaultSearchLimit = 10
)

// ClampLimit clamps a caller-supplied limit into [MinLimit, MaxLimit].
// A zero limit means "not supplied" and resolves to fallback.
func ClampLimit(limit, fallback int) int {
	if limit == 0 {
		return fallback
	}
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// ClampOffset clamps a caller-supplied offset to be non-negative.
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// NormalizeName trims surrounding whitespace and lower-cases a Pokemon
// name; the upstream API only knows lower-case names.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateName validates an already-normalized Pokemon name.
func ValidateName(name string) error {
	if name == "" {
		return apierrors.NewValidationError("name", "Pokemon name is required")
	}
	return nil
}

// ValidatePokemonID validates a Pokedex ID. IDs start at 1.
func ValidatePokemonID(id int) error {
	if id <= 0 {
		return apierrors.NewValidationError("pokemon_id", "Invalid Pokemon ID")
	}
	return nil
}
