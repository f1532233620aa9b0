package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/nightwalk/internal/config"
)

// Catalog is the finite list of hazard structure names for one session.
type Catalog struct {
	Name   string
	Houses []string
}

// NewCatalog selects the university named in cfg, or picks one with rng.
func NewCatalog(cfg config.CatalogConfig, rng *rand.Rand) Catalog {
	if u, ok := cfg.FindUniversity(cfg.University); ok {
		return Catalog{Name: u.Name, Houses: append([]string(nil), u.Houses...)}
	}
	if len(cfg.Universities) == 0 {
		return Catalog{}
	}
	u := cfg.Universities[rng.Intn(len(cfg.Universities))]
	return Catalog{Name: u.Name, Houses: append([]string(nil), u.Houses...)}
}

// Len returns the number of distinct identities.
func (c Catalog) Len() int {
	return len(c.Houses)
}

// Identity maps the n-th structure spawn to its house and stable identity.
// The same n modulo the catalog size always yields the same identity.
func (c Catalog) Identity(n int) (house, identity string) {
	if len(c.Houses) == 0 {
		return "", ""
	}
	i := n % len(c.Houses)
	if i < 0 {
		i += len(c.Houses)
	}
	house = c.Houses[i]
	return house, fmt.Sprintf("%s_%d", house, i)
}
