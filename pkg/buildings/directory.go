// Package buildings resolves user queries to named buildings.
package buildings

import (
	"slices"
	"strings"

	osmparser "walk_router/pkg/osm"
)

// Directory is an immutable, file-ordered list of buildings.
type Directory struct {
	buildings []osmparser.Building
}

// NewDirectory creates a directory over a copy of buildings.
func NewDirectory(buildings []osmparser.Building) *Directory {
	return &Directory{buildings: slices.Clone(buildings)}
}

// Len returns the number of buildings.
func (d *Directory) Len() int {
	return len(d.buildings)
}

// All returns a copy of every building in file order.
func (d *Directory) All() []osmparser.Building {
	return slices.Clone(d.buildings)
}

// Lookup finds the building matching query. Matches are tried in order:
// exact abbreviation, substring of the full name, then the same two checks
// ignoring case. Within each rule the first building in file order wins.
// An empty query matches nothing.
func (d *Directory) Lookup(query string) (osmparser.Building, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return osmparser.Building{}, false
	}

	for _, b := range d.buildings {
		if b.Abbrev != "" && b.Abbrev == query {
			return b, true
		}
	}
	for _, b := range d.buildings {
		if strings.Contains(b.Fullname, query) {
			return b, true
		}
	}

	lower := strings.ToLower(query)
	for _, b := range d.buildings {
		if b.Abbrev != "" && strings.EqualFold(b.Abbrev, query) {
			return b, true
		}
	}
	for _, b := range d.buildings {
		if strings.Contains(strings.ToLower(b.Fullname), lower) {
			return b, true
		}
	}

	return osmparser.Building{}, false
}
