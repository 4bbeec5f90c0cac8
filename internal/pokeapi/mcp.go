package pokeapi

import (
	"context"
)

// MCP Tool wrapper methods
// These methods adapt the client methods to the Args types used for
// MCP tool registration. Results are plain JSON objects so the
// upstream body passes through unmodified.

// GetPokemonListMCP is the MCP wrapper for GetPokemonList
func (c *Client) GetPokemonListMCP(ctx context.Context, args GetPokemonListArgs) (map[string]any, error) {
	return c.GetPokemonList(ctx, args.Limit, args.Offset)
}

// GetPokemonDetailsMCP is the MCP wrapper for GetPokemon
func (c *Client) GetPokemonDetailsMCP(ctx context.Context, args GetPokemonDetailsArgs) (map[string]any, error) {
	return c.GetPokemon(ctx, args.Name)
}

// GetPokemonByIDMCP is the MCP wrapper for GetPokemonByID
func (c *Client) GetPokemonByIDMCP(ctx context.Context, args GetPokemonByIDArgs) (map[string]any, error) {
	return c.GetPokemonByID(ctx, args.PokemonID)
}

// SearchPokemonMCP is the MCP wrapper for SearchPokemon
func (c *Client) SearchPokemonMCP(ctx context.Context, args SearchPokemonArgs) (map[string]any, error) {
	return c.SearchPokemon(ctx, args.Query, args.Limit)
}
