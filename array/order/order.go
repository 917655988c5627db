// Package order provides predicates for array.LinearSearch and
// array.BinarySearch.
package order

import (
	"cmp"
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Compare orders elements by their natural ordering.
func Compare[T cmp.Ordered](elem, value T) int {
	return cmp.Compare(elem, value)
}

// Equal reports whether elem equals value.
func Equal[T comparable](elem, value T) bool {
	return elem == value
}

// By orders elements by a key extracted from each element, compared against a
// key value.
func By[T any, K cmp.Ordered](key func(T) K) func(T, K) int {
	return func(elem T, value K) int {
		return cmp.Compare(key(elem), value)
	}
}

// EqualBy matches elements whose extracted key equals the value.
func EqualBy[T any, K comparable](key func(T) K) func(T, K) bool {
	return func(elem T, value K) bool {
		return key(elem) == value
	}
}

// Collator orders strings according to the rules of a language.
// A Collator is not safe for concurrent use.
type Collator struct {
	tag language.Tag
	c   *collate.Collator
}

// NewCollator returns a Collator for tag.
func NewCollator(tag language.Tag, opts ...collate.Option) *Collator {
	return &Collator{tag: tag, c: collate.New(tag, opts...)}
}

// ParseCollator parses a BCP 47 locale such as "en", "de" or "sv-SE".
// An empty locale selects language.Und, the root collation order.
func ParseCollator(locale string, opts ...collate.Option) (*Collator, error) {
	if locale == "" {
		return NewCollator(language.Und, opts...), nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("order: parse locale %q: %w", locale, err)
	}
	return NewCollator(tag, opts...), nil
}

// Tag returns the collator's language.
func (c *Collator) Tag() language.Tag { return c.tag }

// Compare returns -1, 0 or 1 as a sorts before, equal to or after b.
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}

// Equal reports whether a and b collate equally.
func (c *Collator) Equal(a, b string) bool {
	return c.Compare(a, b) == 0
}

// Sort sorts s in place.
func (c *Collator) Sort(s []string) {
	c.c.SortStrings(s)
}

// CollateBy orders elements by a string key under c.
func CollateBy[T any](c *Collator, key func(T) string) func(T, string) int {
	return func(elem T, value string) int {
		return c.Compare(key(elem), value)
	}
}
