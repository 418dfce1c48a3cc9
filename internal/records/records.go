// Package records implements the state shared by the management modules: an
// in-memory collection, free-text search, the presentational view mode and the
// List / Detail / Form sub-view machine with its delete confirmation gate.
package records

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrRequired is wrapped by validation errors for empty required fields.
var ErrRequired = errors.New("required field missing")

// ErrInvalid is wrapped by validation errors for values outside a field's
// closed set of options.
var ErrInvalid = errors.New("invalid field value")

// ErrNotFound is returned when an id is not in the collection.
var ErrNotFound = errors.New("record not found")

// Record is implemented by every managed record type.
type Record interface {
	RecordID() int
	// SearchFields returns the values free-text search matches against.
	SearchFields() []string
	// Missing returns the names of required fields that are empty.
	Missing() []string
}

// Constrained is implemented by records whose fields take values from a fixed
// list of options.
type Constrained interface {
	// Invalid returns the names of fields holding a value outside their options.
	Invalid() []string
}

// OneOf reports whether v is exactly one of options.
func OneOf(v string, options []string) bool {
	return slices.Contains(options, v)
}

// Identity sets the id of a record, returning the updated copy.
type Identity[T Record] func(T, int) T

// Collection is an insertion-ordered set of records with monotonic ids.
type Collection[T Record] struct {
	items  []T
	nextID int
	withID Identity[T]
}

// NewCollection seeds a collection. New ids start above the largest seed id.
func NewCollection[T Record](seed []T, withID Identity[T]) *Collection[T] {
	c := &Collection[T]{
		items:  slices.Clone(seed),
		nextID: 1,
		withID: withID,
	}
	for _, r := range seed {
		if r.RecordID() >= c.nextID {
			c.nextID = r.RecordID() + 1
		}
	}
	return c
}

// Len returns the number of records.
func (c *Collection[T]) Len() int { return len(c.items) }

// All returns a copy of the records in insertion order.
func (c *Collection[T]) All() []T { return slices.Clone(c.items) }

// Get returns the record with id.
func (c *Collection[T]) Get(id int) (T, bool) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// Add appends r under a newly assigned id and returns the stored record.
func (c *Collection[T]) Add(r T) T {
	r = c.withID(r, c.nextID)
	c.nextID++
	c.items = append(c.items, r)
	return r
}

// Replace swaps the record sharing r's id.
func (c *Collection[T]) Replace(r T) error {
	i := c.index(r.RecordID())
	if i < 0 {
		return fmt.Errorf("replace %d: %w", r.RecordID(), ErrNotFound)
	}
	c.items[i] = r
	return nil
}

// Remove deletes the record with id.
func (c *Collection[T]) Remove(id int) error {
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("remove %d: %w", id, ErrNotFound)
	}
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

// Filter returns the records matching term, preserving order.
func (c *Collection[T]) Filter(term string) []T {
	out := make([]T, 0, len(c.items))
	for _, r := range c.items {
		if Matches(r, term) {
			out = append(out, r)
		}
	}
	return out
}

func (c *Collection[T]) index(id int) int {
	return slices.IndexFunc(c.items, func(r T) bool { return r.RecordID() == id })
}

// Matches reports whether any search field of r contains term, ignoring case.
// An empty term matches everything.
func Matches(r Record, term string) bool {
	needle := strings.ToLower(term)
	if needle == "" {
		return true
	}
	for _, field := range r.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Validate returns an error wrapping ErrRequired when r has empty required
// fields, or ErrInvalid when a constrained field holds an unknown value.
func Validate(r Record) error {
	if missing := r.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrRequired, strings.Join(missing, ", "))
	}
	if c, ok := r.(Constrained); ok {
		if invalid := c.Invalid(); len(invalid) > 0 {
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(invalid, ", "))
		}
	}
	return nil
}
