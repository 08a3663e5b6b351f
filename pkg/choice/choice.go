// Package choice canonicalises the heterogeneous choice declarations a
// selectable item accepts (plain label lists, key/label pairs, key/label/icon
// triples or a per-instance generator) into one ordered list of entries.
package choice

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-dataitem/internal/textutil"
)

// Entry is one selectable option. Key must be comparable and unique within a
// resolved list; Icon is an optional reference resolved by the presentation
// layer (see pkg/icons).
type Entry struct {
	Key   any
	Label string
	Icon  string
}

// List is an ordered choice-list snapshot. Order is significant: multi-select
// masks encode selections by entry position.
type List []Entry

// Pair couples an explicit key with its display label.
type Pair struct {
	Key   any
	Label string
}

// Labels builds a list from plain labels. Keys fall back to the zero-based
// position index.
func Labels(labels ...string) List {
	out := make(List, 0, len(labels))
	for idx, label := range labels {
		out = append(out, Entry{Key: idx, Label: textutil.Normalize(label)})
	}
	return out
}

// Pairs builds a list from explicit key/label pairs.
func Pairs(pairs ...Pair) List {
	out := make(List, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, Entry{Key: p.Key, Label: textutil.Normalize(p.Label)})
	}
	return out
}

// Normalize canonicalises hand-built entries: nil keys fall back to the
// position index and labels go through the incoming-text boundary.
func Normalize(entries List) List {
	out := make(List, 0, len(entries))
	for idx, e := range entries {
		if e.Key == nil {
			e.Key = idx
		}
		e.Label = textutil.Normalize(e.Label)
		out = append(out, e)
	}
	return out
}

// WithIcons normalises entries that must carry an icon reference. Image
// choice items reject icon-less entries by contract, not convention.
func WithIcons(entries ...Entry) (List, error) {
	out := Normalize(entries)
	for idx, e := range out {
		if e.Icon == "" {
			return nil, fmt.Errorf("choice: entry %d (%q) has no icon reference", idx, e.Label)
		}
	}
	return out, nil
}

// MustWithIcons is WithIcons for declaration sites where a missing icon is a
// programming error.
func MustWithIcons(entries ...Entry) List {
	out, err := WithIcons(entries...)
	if err != nil {
		panic(err)
	}
	return out
}

// Validate checks key uniqueness within the snapshot.
func (l List) Validate() error {
	seen := make(map[any]int, len(l))
	for idx, e := range l {
		if prev, ok := seen[e.Key]; ok {
			return fmt.Errorf("choice: duplicate key %v at entries %d and %d", e.Key, prev, idx)
		}
		seen[e.Key] = idx
	}
	return nil
}

// Index returns the position of the entry with the given key, or -1.
func (l List) Index(key any) int {
	for idx, e := range l {
		if e.Key == key {
			return idx
		}
	}
	return -1
}

// Keys returns the keys in list order.
func (l List) Keys() []any {
	out := make([]any, len(l))
	for idx, e := range l {
		out[idx] = e.Key
	}
	return out
}

// LabelStrings returns the labels in list order, ready for prompt drivers.
func (l List) LabelStrings() []string {
	out := make([]string, len(l))
	for idx, e := range l {
		out[idx] = e.Label
	}
	return out
}

// Generator produces the choice list for one record instance. owner is the
// item the source belongs to. Generators must be reentrant; they may return
// different lists across calls when other fields of the instance changed.
type Generator func(owner, instance any) (List, error)

var errNilInstance = errors.New("choice: generator requires a record instance")

// Source is a static list or a per-instance generator. The zero value is an
// empty static list.
type Source struct {
	static  List
	dynamic Generator
}

// StaticOf wraps a fixed list, normalising it first.
func StaticOf(l List) Source { return Source{static: Normalize(l)} }

// DynamicOf wraps a generator.
func DynamicOf(fn Generator) Source { return Source{dynamic: fn} }

// IsDynamic reports whether resolution requires a record instance.
func (s Source) IsDynamic() bool { return s.dynamic != nil }

// Static returns the fixed list when the source has one.
func (s Source) Static() (List, bool) {
	if s.dynamic != nil {
		return nil, false
	}
	return s.static, true
}

// Resolve yields the choice-list snapshot for the given owner/instance pair.
// A failing generator, or a generator asked to run without an instance, is
// a choice-resolution failure, reported as an error so callers can tell it
// apart from a bad value. The snapshot is validated for key uniqueness.
func (s Source) Resolve(owner, instance any) (List, error) {
	if s.dynamic == nil {
		return s.static, nil
	}
	if instance == nil {
		return nil, errNilInstance
	}
	out, err := s.dynamic(owner, instance)
	if err != nil {
		return nil, fmt.Errorf("choice: resolve: %w", err)
	}
	out = Normalize(out)
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
