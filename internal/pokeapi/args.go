package pokeapi

// GetPokemonListArgs contains parameters for the paginated Pokemon list
type GetPokemonListArgs struct {
	Limit  int `json:"limit,omitempty" jsonschema_description:"Number of Pokemon to return (default 20, max 100)"`
	Offset int `json:"offset,omitempty" jsonschema_description:"Number of Pokemon to skip (default 0)"`
}

// GetPokemonDetailsArgs contains parameters for a lookup by name
type GetPokemonDetailsArgs struct {
	Name string `json:"name" jsonschema:"required" jsonschema_description:"Pokemon name (e.g., 'pikachu', 'charizard'). Case-insensitive."`
}

// GetPokemonByIDArgs contains parameters for a lookup by Pokedex ID
type GetPokemonByIDArgs struct {
	PokemonID int `json:"pokemon_id" jsonschema:"required" jsonschema_description:"Pokedex ID (e.g., 1 for Bulbasaur, 25 for Pikachu). Must be a positive integer."`
}

// SearchPokemonArgs contains parameters for a partial-name search
type SearchPokemonArgs struct {
	Query string `json:"query" jsonschema:"required" jsonschema_description:"Partial Pokemon name to match, case-insensitive (e.g., 'char' matches charmander, charizard)"`
	Limit int    `json:"limit,omitempty" jsonschema_description:"Maximum number of results to return (default 10, max 100)"`
}
