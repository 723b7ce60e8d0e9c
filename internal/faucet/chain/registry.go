package chain

import (
	"sort"
	"strings"
)

// Registry maps network aliases to RPC endpoints and explorer base URLs.
// It is built once from configuration and read-only afterwards.
type Registry struct {
	networks        map[string]Endpoint
	defaultExplorer string
}

// NewRegistry builds a registry from comma-separated `name=value` pairs:
// networks maps alias -> RPC URL, explorers maps alias -> explorer base URL.
// Aliases without an explorer entry fall back to defaultExplorerBaseURL.
func NewRegistry(networks string, explorers string, defaultExplorerBaseURL string) *Registry {
	rpcURLs := ParsePairs(networks)
	explorerURLs := ParsePairs(explorers)

	entries := make(map[string]Endpoint, len(rpcURLs))
	for name, rpcURL := range rpcURLs {
		explorerBaseURL, ok := explorerURLs[name]
		if !ok {
			explorerBaseURL = defaultExplorerBaseURL
		}

		entries[name] = Endpoint{
			Name:            name,
			RPCURL:          rpcURL,
			ExplorerBaseURL: explorerBaseURL,
		}
	}

	return &Registry{
		networks:        entries,
		defaultExplorer: defaultExplorerBaseURL,
	}
}

// Resolve returns the endpoint for a network identifier. Unknown identifiers
// are treated as raw RPC endpoint URLs with the default explorer base, which
// keeps requests that pass the node URL directly working.
func (r *Registry) Resolve(network string) Endpoint {
	name := strings.ToLower(strings.TrimSpace(network))
	if endpoint, ok := r.networks[name]; ok {
		return endpoint
	}

	return Endpoint{
		Name:            network,
		RPCURL:          network,
		ExplorerBaseURL: r.defaultExplorer,
	}
}

// List returns all configured endpoints sorted by name.
func (r *Registry) List() []Endpoint {
	endpoints := make([]Endpoint, 0, len(r.networks))
	for _, endpoint := range r.networks {
		endpoints = append(endpoints, endpoint)
	}

	sort.Slice(endpoints, func(i, j int) bool { return endpoints[i].Name < endpoints[j].Name })

	return endpoints
}

// ParsePairs parses a comma-separated list of `name=value` pairs. Empty
// segments and segments without a value are skipped, names are lowercased.
func ParsePairs(raw string) map[string]string {
	result := map[string]string{}
	if raw == "" {
		return result
	}

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}

		name := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if name == "" || value == "" {
			continue
		}

		result[name] = value
	}

	return result
}
