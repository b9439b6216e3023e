package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExtractedPair is one raw (name, price text) row produced by the document
// extraction collaborator, before any validation.
type ExtractedPair struct {
	Name      string `json:"name"`
	PriceText string `json:"price_text"`
}

// CatalogEntry is a canonical priced item. Name keeps the display form from
// the source document; lookups go through NormalizeName.
type CatalogEntry struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Candidate pairs a catalog entry with its normalized lookup key, for
// similarity scoring.
type Candidate struct {
	Key   string
	Entry *CatalogEntry
}

// Catalog is the immutable set of priced items for a session, in source
// order. It exposes no mutation after BuildCatalog, so concurrent read-only
// resolution against it needs no locking.
type Catalog struct {
	entries []CatalogEntry
	keys    []string       // normalized key per entry, same index
	byKey   map[string]int // normalized key -> entries index
}

// BuildCatalog validates extracted pairs into a Catalog. Malformed prices
// and names that collide after normalization fail with CatalogParseError;
// bad rows are never skipped.
func BuildCatalog(pairs []ExtractedPair) (*Catalog, error) {
	if len(pairs) == 0 {
		return nil, &CatalogParseError{Reason: "no entries extracted from source document"}
	}

	c := &Catalog{
		entries: make([]CatalogEntry, 0, len(pairs)),
		keys:    make([]string, 0, len(pairs)),
		byKey:   make(map[string]int, len(pairs)),
	}
	for _, p := range pairs {
		key := NormalizeName(p.Name)
		if key == "" {
			return nil, &CatalogParseError{Name: p.Name, Reason: "name is empty after normalization"}
		}
		if prev, ok := c.byKey[key]; ok {
			return nil, &CatalogParseError{
				Name:   p.Name,
				Reason: fmt.Sprintf("normalized name collides with entry %q", c.entries[prev].Name),
			}
		}

		price, err := ParsePrice(p.PriceText)
		if err != nil {
			return nil, &CatalogParseError{Name: p.Name, Reason: "malformed price", Err: err}
		}

		c.byKey[key] = len(c.entries)
		c.entries = append(c.entries, CatalogEntry{Name: p.Name, UnitPrice: price})
		c.keys = append(c.keys, key)
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns a copy of the entries in source order, for display.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Candidates returns the normalized keys paired with entry references, in
// source order. The returned entry pointers stay valid for the catalog's
// lifetime; callers must not mutate through them.
func (c *Catalog) Candidates() []Candidate {
	out := make([]Candidate, len(c.entries))
	for i := range c.entries {
		out[i] = Candidate{Key: c.keys[i], Entry: &c.entries[i]}
	}
	return out
}

// Lookup finds the entry whose name normalizes to the same key as name.
func (c *Catalog) Lookup(name string) (*CatalogEntry, bool) {
	i, ok := c.byKey[NormalizeName(name)]
	if !ok {
		return nil, false
	}
	return &c.entries[i], true
}
