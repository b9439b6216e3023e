package domain

import (
	"fmt"
	"strings"
)

// CatalogParseError reports a malformed or ambiguous catalog source entry.
// It is fatal to session startup: a catalog with a bad or duplicated price
// row must never be silently repaired.
type CatalogParseError struct {
	Name   string // the offending entry's name as extracted
	Reason string
	Err    error
}

func (e *CatalogParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog entry %q: %s: %v", e.Name, e.Reason, e.Err)
	}
	return fmt.Sprintf("catalog entry %q: %s", e.Name, e.Reason)
}

func (e *CatalogParseError) Unwrap() error { return e.Err }

// EmptyOrderError reports an utterance with no extractable line items
// (blank or pure punctuation). Recoverable: re-prompt the customer.
type EmptyOrderError struct {
	Utterance string
}

func (e *EmptyOrderError) Error() string {
	return fmt.Sprintf("no order items found in %q", e.Utterance)
}

// OrderHasUnresolvedItemsError aborts pricing when one or more mentions
// could not be matched with enough confidence. It carries the exact raw
// mentions so the caller can ask the customer to clarify those items.
type OrderHasUnresolvedItemsError struct {
	Unresolved []UnresolvedMention
}

func (e *OrderHasUnresolvedItemsError) Error() string {
	names := make([]string, len(e.Unresolved))
	for i, u := range e.Unresolved {
		names[i] = fmt.Sprintf("%q", u.RawName)
	}
	return "order has unresolved items: " + strings.Join(names, ", ")
}

// RawNames returns the unresolved mentions' original text, in order.
func (e *OrderHasUnresolvedItemsError) RawNames() []string {
	names := make([]string, len(e.Unresolved))
	for i, u := range e.Unresolved {
		names[i] = u.RawName
	}
	return names
}
