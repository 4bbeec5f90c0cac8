package tools

// AllTools contains all tool specifications for the PokeAPI MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	{
		Name:     "get_pokemon_list",
		Method:   "GetPokemonList",
		Title:    "List Pokemon",
		Category: "list",
		Description: `Browse the Pokemon index page by page.

USE WHEN: User asks "list some Pokemon", "show the first 50 Pokemon", "what Pokemon come after number 100".

NOT FOR: Finding Pokemon whose name matches a fragment (use search_pokemon). Not for details about one Pokemon (use get_pokemon_details or get_pokemon_by_id).

PARAMETERS:
- limit: Pokemon per page (default 20, max 100)
- offset: Number of entries to skip (default 0)

RETURNS: Total count plus one page of {name, url} entries, exactly as the PokeAPI returns them.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_pokemon_details",
		Method:   "GetPokemonDetails",
		Title:    "Get Pokemon by Name",
		Category: "lookup",
		Description: `Get full details for ONE Pokemon identified by name.

USE WHEN: User names a specific Pokemon: "tell me about pikachu", "what are charizard's stats", "how tall is snorlax".

NOT FOR: Numeric IDs (use get_pokemon_by_id). Not for partial names like "char" (use search_pokemon).

PARAMETERS:
- name: Pokemon name, case-insensitive (required)

RETURNS: The complete PokeAPI record: id, name, height, weight, base experience, types, stats, abilities, and more.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_pokemon_by_id",
		Method:   "GetPokemonByID",
		Title:    "Get Pokemon by ID",
		Category: "lookup",
		Description: `Get full details for ONE Pokemon identified by Pokedex number.

USE WHEN: User gives a number: "what is Pokemon #25", "show me Pokedex entry 150".

NOT FOR: Names (use get_pokemon_details). Not for ranges of numbers (use get_pokemon_list with offset).

PARAMETERS:
- pokemon_id: Positive integer Pokedex ID (required)

RETURNS: The complete PokeAPI record: id, name, height, weight, base experience, types, stats, abilities, and more.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "search_pokemon",
		Method:   "SearchPokemon",
		Title:    "Search Pokemon",
		Category: "search",
		Description: `Find Pokemon whose name CONTAINS a fragment (case-insensitive).

USE WHEN: User knows part of a name: "Pokemon with 'char' in the name", "anything ending in -chu", "search for saur".

NOT FOR: Exact known names (use get_pokemon_details). Not for browsing everything (use get_pokemon_list).

PARAMETERS:
- query: Name fragment to match (required)
- limit: Max results (default 10, max 100)

RETURNS: The query, number of matches returned, and matching {name, url} entries.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}

// ToolsByCategory returns all tool specs in the given category.
func ToolsByCategory(category string) []ToolSpec {
	var result []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			result = append(result, spec)
		}
	}
	return result
}
