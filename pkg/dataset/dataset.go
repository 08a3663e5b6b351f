// Package dataset provides the declaration boundary for record types and a
// memory-backed reference container. A Schema is the ordered, frozen list of
// items a record type is declared from; attaching items freezes them, ending
// the configuration phase. Records hold per-instance values keyed by item
// identity and drive validation and serialization in declaration order.
package dataset

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-dataitem/pkg/item"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

var errNoItems = errors.New("dataset: schema needs at least one item")

// Schema is the frozen, ordered declaration of a record type. Immutable after
// New returns and safe for concurrent use.
type Schema struct {
	name  string
	items []item.Item
}

// New declares a record type from the given items, freezing each of them.
// Duplicate items are rejected: identity is the item value itself, held once
// per field.
func New(name string, items ...item.Item) (*Schema, error) {
	if len(items) == 0 {
		return nil, errNoItems
	}
	seen := make(map[item.Item]int, len(items))
	for idx, it := range items {
		if it == nil {
			return nil, fmt.Errorf("dataset: item %d of %q is nil", idx, name)
		}
		if prev, ok := seen[it]; ok {
			return nil, fmt.Errorf("dataset: item %q attached twice (positions %d and %d)", it.Label(), prev, idx)
		}
		seen[it] = idx
	}
	for _, it := range items {
		it.Freeze()
	}
	return &Schema{name: name, items: append([]item.Item(nil), items...)}, nil
}

// MustNew is New for declaration sites where a bad schema is a programming
// error.
func MustNew(name string, items ...item.Item) *Schema {
	s, err := New(name, items...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the record type name.
func (s *Schema) Name() string { return s.name }

// Items returns the items in declaration order.
func (s *Schema) Items() []item.Item {
	return append([]item.Item(nil), s.items...)
}

// Len reports the number of declared items.
func (s *Schema) Len() int { return len(s.items) }

// NewRecord creates a record seeded with each item's resolved default. The
// record under construction is passed to dynamic defaults, so defaults that
// read earlier fields see values already seeded.
func (s *Schema) NewRecord() (*Record, error) {
	rec := &Record{schema: s, values: make(map[item.Item]any, len(s.items))}
	for _, it := range s.items {
		v, err := it.DefaultValue(rec)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", s.name, err)
		}
		if v != nil {
			rec.values[it] = v
		}
	}
	return rec, nil
}

// Record is the memory-backed reference container. It is not safe for
// concurrent mutation; the items it holds values for are.
type Record struct {
	schema *Schema
	values map[item.Item]any
}

// Schema returns the record type this record belongs to.
func (r *Record) Schema() *Schema { return r.schema }

// Value implements item.Record.
func (r *Record) Value(it item.Item) (any, bool) {
	v, ok := r.values[it]
	return v, ok
}

// SetValue implements item.Record.
func (r *Record) SetValue(it item.Item, value any) {
	if value == nil {
		delete(r.values, it)
		return
	}
	r.values[it] = value
}

// Check validates every field and returns the labels of the items whose
// current value fails policy. Missing values fail unless the item accepts
// nil.
func (r *Record) Check() []string {
	var failed []string
	for _, it := range r.schema.items {
		v := r.values[it]
		if !it.CheckValue(v) {
			failed = append(failed, it.Label())
		}
	}
	return failed
}

// Save writes every field in declaration order. Each item contributes exactly
// one logical value, so the stream layout is fixed by the schema alone.
func (r *Record) Save(w serialize.Writer) error {
	for _, it := range r.schema.items {
		if err := it.Serialize(r, w); err != nil {
			return fmt.Errorf("dataset: save %s: %w", r.schema.name, err)
		}
	}
	return nil
}

// Load restores every field in declaration order, consuming exactly the
// stream Save produced.
func (r *Record) Load(rd serialize.Reader) error {
	for _, it := range r.schema.items {
		if err := it.Deserialize(r, rd); err != nil {
			return fmt.Errorf("dataset: load %s: %w", r.schema.name, err)
		}
	}
	return nil
}
