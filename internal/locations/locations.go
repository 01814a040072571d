// Package locations holds the static State→District→City lookup table and
// the pure derivation functions behind every cascading location selector.
// Both dealer forms and the list filter consume this one implementation.
package locations

import "sort"

// States returns all known states, sorted.
func States() []string {
	out := make([]string, 0, len(table))
	for s := range table {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Districts returns the districts of a state, sorted. Unknown or empty
// state yields an empty slice: the district selector stays inert until a
// state is chosen.
func Districts(state string) []string {
	districts, ok := table[state]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(districts))
	for d := range districts {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Cities returns the cities of a state+district pair, sorted. Either part
// missing or unknown yields an empty slice.
func Cities(state, district string) []string {
	districts, ok := table[state]
	if !ok {
		return []string{}
	}
	cities, ok := districts[district]
	if !ok {
		return []string{}
	}
	out := make([]string, len(cities))
	copy(out, cities)
	sort.Strings(out)
	return out
}

// Valid reports whether the city belongs to the district and the district
// to the state, per the lookup table.
func Valid(state, district, city string) bool {
	districts, ok := table[state]
	if !ok {
		return false
	}
	cities, ok := districts[district]
	if !ok {
		return false
	}
	for _, c := range cities {
		if c == city {
			return true
		}
	}
	return false
}

// Table exposes the full nested mapping for callers that need to serialize
// it once (the web UI embeds it for client-side cascades). The returned map
// must be treated as read-only.
func Table() map[string]map[string][]string {
	return table
}
