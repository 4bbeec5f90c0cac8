// Package pokeapi provides a client for the public PokeAPI REST service.
// It exposes Pokemon list, detail, and search operations for the MCP tools.
package pokeapi

// NamedResource is a single entry in the paginated Pokemon index:
// a name plus the URL of the full resource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListResponse is the upstream shape of GET /pokemon. The list tool
// passes the raw body through; this typed form is only decoded when
// the search tool needs the name index.
type ListResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}
