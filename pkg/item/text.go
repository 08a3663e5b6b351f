package item

import (
	"github.com/goliatone/go-dataitem/internal/textutil"
	"github.com/goliatone/go-dataitem/pkg/property"
)

// StringItem is a single-line text field.
type StringItem struct {
	Base
}

// NewString declares a single-line text field.
func NewString(label string) *StringItem {
	it := &StringItem{}
	it.bind(it, label)
	return it
}

// WithHelp sets the tooltip text.
func (it *StringItem) WithHelp(help string) *StringItem {
	it.setHelp(help)
	return it
}

// WithDefault sets a constant default value.
func (it *StringItem) WithDefault(v string) *StringItem {
	it.setDefault(property.Static(v))
	return it
}

// NotEmpty rejects the empty string.
func (it *StringItem) NotEmpty() *StringItem {
	it.SetProp(GroupData, PropNotEmpty, property.Static(true))
	return it
}

// CheckValue implements Item. Only the optional non-empty constraint applies
// beyond the type itself.
func (it *StringItem) CheckValue(value any) bool {
	v, ok := value.(string)
	if !ok {
		return false
	}
	if notempty, _ := it.Prop(GroupData, PropNotEmpty).(bool); notempty && v == "" {
		return false
	}
	return true
}

// FromString implements Item; every text converts after boundary
// normalization.
func (it *StringItem) FromString(text string) (any, bool) {
	return textutil.Normalize(text), true
}

// TextItem is a multiline text field. It behaves exactly like StringItem at
// this layer; the multiline marker only informs editor widgets.
type TextItem struct {
	StringItem
}

// NewText declares a multiline text field.
func NewText(label string) *TextItem {
	it := &TextItem{}
	it.bind(it, label)
	it.SetProp(GroupDisplay, PropMultiline, property.Static(true))
	return it
}

// WithHelp sets the tooltip text.
func (it *TextItem) WithHelp(help string) *TextItem {
	it.setHelp(help)
	return it
}

// WithDefault sets a constant default value.
func (it *TextItem) WithDefault(v string) *TextItem {
	it.setDefault(property.Static(v))
	return it
}

// FontFamilyItem is a font family name field.
type FontFamilyItem struct {
	StringItem
}

// NewFontFamily declares a font family name field.
func NewFontFamily(label string) *FontFamilyItem {
	it := &FontFamilyItem{}
	it.bind(it, label)
	return it
}

// WithDefault sets a constant default value.
func (it *FontFamilyItem) WithDefault(v string) *FontFamilyItem {
	it.setDefault(property.Static(v))
	return it
}
