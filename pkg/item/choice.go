package item

import (
	"fmt"

	"github.com/goliatone/go-dataitem/internal/textutil"
	"github.com/goliatone/go-dataitem/pkg/choice"
	"github.com/goliatone/go-dataitem/pkg/property"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

// ChoiceItem is a single-selection field over a canonical choice list. The
// list is static or produced per record instance by a generator; the stored
// value is the selected entry's key.
type ChoiceItem struct {
	Base
	source choice.Source
}

// NewChoice declares a single-choice field. Without an explicit default, a
// static source defaults to its first entry's key; a dynamic source cannot be
// pre-resolved and defaults to nothing until an instance exists.
func NewChoice(label string, src choice.Source) *ChoiceItem {
	it := &ChoiceItem{}
	it.initChoice(it, label, src)
	return it
}

func (it *ChoiceItem) initChoice(self Item, label string, src choice.Source) {
	it.bind(self, label)
	it.source = src
	it.SetProp(GroupData, PropChoices, property.Static(src))
	if lst, ok := src.Static(); ok && len(lst) > 0 {
		it.def = property.Static(lst[0].Key)
	}
}

// WithHelp sets the tooltip text.
func (it *ChoiceItem) WithHelp(help string) *ChoiceItem {
	it.setHelp(help)
	return it
}

// WithDefault selects the default key explicitly.
func (it *ChoiceItem) WithDefault(key any) *ChoiceItem {
	it.setDefault(property.Static(key))
	return it
}

// Source returns the declared choice source.
func (it *ChoiceItem) Source() choice.Source { return it.source }

// Choices resolves the choice-list snapshot for a record instance. A failing
// or premature resolution is a choice-resolution failure: an error, distinct
// from both validation and conversion failures.
func (it *ChoiceItem) Choices(rec Record) (choice.List, error) {
	lst, err := it.source.Resolve(it, recInstance(rec))
	if err != nil {
		return nil, fmt.Errorf("item: choices of %q: %w", it.Label(), err)
	}
	return lst, nil
}

// CheckValue implements Item. Against a static list the key must be a member;
// a dynamic list cannot be checked without an instance and passes here.
func (it *ChoiceItem) CheckValue(value any) bool {
	lst, ok := it.source.Static()
	if !ok {
		return true
	}
	return lst.Index(value) >= 0
}

// FromString implements Item, matching the normalized text against the static
// labels. Dynamic sources cannot convert without an instance.
func (it *ChoiceItem) FromString(text string) (any, bool) {
	lst, ok := it.source.Static()
	if !ok {
		return nil, false
	}
	text = textutil.Normalize(text)
	for _, e := range lst {
		if e.Label == text {
			return e.Key, true
		}
	}
	return nil, false
}

// Deserialize implements Item. Stream codecs widen integer keys to generic
// numbers; the loaded key is re-narrowed against the resolved choice list so
// membership checks keep passing after a round trip. The value is stored
// under the bound concrete item, which differs from the receiver when the
// method is promoted into an embedding item.
func (it *ChoiceItem) Deserialize(rec Record, r serialize.Reader) error {
	v, err := r.ReadValue()
	if err != nil {
		return fmt.Errorf("item: deserialize %q: %w", it.Label(), err)
	}
	rec.SetValue(it.self, it.narrowKey(rec, v))
	return nil
}

// narrowKey matches a loaded key against the choice list, undoing codec
// number widening. A key without a match is stored as-is so Check can report
// it.
func (it *ChoiceItem) narrowKey(rec Record, v any) any {
	lst, err := it.Choices(rec)
	if err != nil {
		return v
	}
	if lst.Index(v) >= 0 {
		return v
	}
	if n, ok := asInt(v); ok && lst.Index(n) >= 0 {
		return n
	}
	return v
}

// MultipleChoiceItem is a multi-selection field; its value is the set of
// selected keys, held as a slice in choice-list order.
type MultipleChoiceItem struct {
	ChoiceItem
}

// NewMultipleChoice declares a multi-choice field defaulting to the empty
// selection.
func NewMultipleChoice(label string, src choice.Source) *MultipleChoiceItem {
	it := &MultipleChoiceItem{}
	it.bind(it, label)
	it.source = src
	it.SetProp(GroupData, PropChoices, property.Static(src))
	it.def = property.Static([]any{})
	it.SetProp(GroupDisplay, PropShape, property.Static([2]int{1, -1}))
	return it
}

// WithHelp sets the tooltip text.
func (it *MultipleChoiceItem) WithHelp(help string) *MultipleChoiceItem {
	it.setHelp(help)
	return it
}

// WithDefault selects the default keys explicitly.
func (it *MultipleChoiceItem) WithDefault(keys ...any) *MultipleChoiceItem {
	it.setDefault(property.Static(append([]any(nil), keys...)))
	return it
}

// Horizontal arranges the choice list on n rows. Layout helpers are
// declaration-time configuration and panic after freeze like any other
// mutation.
func (it *MultipleChoiceItem) Horizontal(rows int) *MultipleChoiceItem {
	it.SetProp(GroupDisplay, PropShape, property.Static([2]int{rows, -1}))
	return it
}

// Vertical arranges the choice list on n columns.
func (it *MultipleChoiceItem) Vertical(cols int) *MultipleChoiceItem {
	it.SetProp(GroupDisplay, PropShape, property.Static([2]int{-1, cols}))
	return it
}

// CheckValue implements Item: every selected key must be a member of a static
// list; dynamic lists pass without an instance.
func (it *MultipleChoiceItem) CheckValue(value any) bool {
	keys, ok := value.([]any)
	if !ok {
		return false
	}
	lst, static := it.source.Static()
	if !static {
		return true
	}
	for _, key := range keys {
		if lst.Index(key) < 0 {
			return false
		}
	}
	return true
}

// Serialize implements Item. The selection is encoded as an ordered boolean
// mask, one flag per entry of the currently resolved choice list: the
// encoding is order-dependent, so deserialization must see the same list.
func (it *MultipleChoiceItem) Serialize(rec Record, w serialize.Writer) error {
	lst, err := it.Choices(rec)
	if err != nil {
		return err
	}
	v, _ := rec.Value(it)
	selected, _ := v.([]any)
	mask := make([]any, len(lst))
	for idx, e := range lst {
		mask[idx] = containsKey(selected, e.Key)
	}
	if err := w.WriteSequence(mask); err != nil {
		return fmt.Errorf("item: serialize %q: %w", it.Label(), err)
	}
	return nil
}

// Deserialize implements Item, pairing mask positions with the choice list
// resolved now. A dynamic choice generator that depends on fields not yet
// deserialized is a record-construction-order hazard the caller owns.
func (it *MultipleChoiceItem) Deserialize(rec Record, r serialize.Reader) error {
	flags, err := r.ReadSequence()
	if err != nil {
		return fmt.Errorf("item: deserialize %q: %w", it.Label(), err)
	}
	lst, err := it.Choices(rec)
	if err != nil {
		return err
	}
	selected := []any{}
	for idx, flag := range flags {
		set, _ := flag.(bool)
		if set && idx < len(lst) {
			selected = append(selected, lst[idx].Key)
		}
	}
	rec.SetValue(it, selected)
	return nil
}

// ImageChoiceItem is a single-choice field whose entries all carry an icon
// reference. Construction goes through choice.WithIcons, which rejects
// icon-less entries by contract.
type ImageChoiceItem struct {
	ChoiceItem
}

// NewImageChoice declares an image-annotated choice field.
func NewImageChoice(label string, src choice.Source) *ImageChoiceItem {
	it := &ImageChoiceItem{}
	it.initChoice(it, label, src)
	return it
}

// WithDefault selects the default key explicitly.
func (it *ImageChoiceItem) WithDefault(key any) *ImageChoiceItem {
	it.setDefault(property.Static(key))
	return it
}

func containsKey(keys []any, key any) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// recInstance strips the typed nil a Record interface can carry so choice
// sources see a true nil instance.
func recInstance(rec Record) any {
	if rec == nil {
		return nil
	}
	return rec
}
