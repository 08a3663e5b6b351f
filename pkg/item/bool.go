package item

import (
	"fmt"

	"github.com/goliatone/go-dataitem/pkg/property"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

// BoolItem is a boolean field. Beyond the type there is nothing to validate;
// the inline text attribute only informs editor widgets.
type BoolItem struct {
	Base
}

// NewBool declares a boolean field.
func NewBool(label string) *BoolItem {
	it := &BoolItem{}
	it.bind(it, label)
	return it
}

// WithHelp sets the tooltip text.
func (it *BoolItem) WithHelp(help string) *BoolItem {
	it.setHelp(help)
	return it
}

// WithDefault sets a constant default value.
func (it *BoolItem) WithDefault(v bool) *BoolItem {
	it.setDefault(property.Static(v))
	return it
}

// WithText sets the inline label shown next to the checkbox itself.
func (it *BoolItem) WithText(text string) *BoolItem {
	it.SetProp(GroupDisplay, PropText, property.Static(text))
	return it
}

// CheckValue implements Item.
func (it *BoolItem) CheckValue(value any) bool {
	_, ok := value.(bool)
	return ok
}

// Deserialize implements Item.
func (it *BoolItem) Deserialize(rec Record, r serialize.Reader) error {
	v, err := r.ReadValue()
	if err != nil {
		return fmt.Errorf("item: deserialize %q: %w", it.Label(), err)
	}
	if v == nil {
		rec.SetValue(it, nil)
		return nil
	}
	b, ok := asBool(v)
	if !ok {
		return fmt.Errorf("item: deserialize %q: %v is not a bool", it.Label(), v)
	}
	rec.SetValue(it, b)
	return nil
}
