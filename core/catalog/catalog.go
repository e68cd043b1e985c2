// Package catalog - Authoritative provider pricing catalog
// Pricing data is versionable reference data, decoupled from the
// calculation functions so formulas and tables can be tested apart.
package catalog

import (
	"github.com/Epherum/translation-app/core/types"
	"github.com/Epherum/translation-app/internal/errors"
)

// Catalog is an ordered collection of provider pricing profiles.
// Insertion order is preserved; comparisons rely on it for stable
// tie-breaking.
type Catalog struct {
	order   []string
	entries map[string]types.ProviderPricing
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		entries: make(map[string]types.ProviderPricing),
	}
}

// Register adds a provider to the catalog. Re-registering a name
// replaces the profile but keeps its original position.
func (c *Catalog) Register(provider types.ProviderPricing) error {
	if err := ValidateProvider(provider); err != nil {
		return err
	}
	if _, exists := c.entries[provider.Name]; !exists {
		c.order = append(c.order, provider.Name)
	}
	c.entries[provider.Name] = provider
	return nil
}

// Get looks up a provider by name
func (c *Catalog) Get(name string) (types.ProviderPricing, error) {
	provider, ok := c.entries[name]
	if !ok {
		return types.ProviderPricing{}, errors.UnknownProvider(name)
	}
	return provider, nil
}

// List returns all providers in insertion order
func (c *Catalog) List() []types.ProviderPricing {
	result := make([]types.ProviderPricing, 0, len(c.order))
	for _, name := range c.order {
		result = append(result, c.entries[name])
	}
	return result
}

// Names returns all provider names in insertion order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Len returns the number of providers
func (c *Catalog) Len() int {
	return len(c.order)
}
