package item

import (
	"fmt"
	"time"

	"github.com/goliatone/go-dataitem/internal/textutil"
	"github.com/goliatone/go-dataitem/pkg/property"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

// dateLayouts are the accepted textual date forms, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateItem is a calendar date field holding time.Time values.
type DateItem struct {
	Base
}

// NewDate declares a date field.
func NewDate(label string) *DateItem {
	it := &DateItem{}
	it.bind(it, label)
	return it
}

// WithHelp sets the tooltip text.
func (it *DateItem) WithHelp(help string) *DateItem {
	it.setHelp(help)
	return it
}

// WithDefault sets a constant default value.
func (it *DateItem) WithDefault(v time.Time) *DateItem {
	it.setDefault(property.Static(v))
	return it
}

// CheckValue implements Item; the date kinds are type-tagged pass-throughs.
func (it *DateItem) CheckValue(value any) bool {
	_, ok := value.(time.Time)
	return ok
}

// FromString implements Item.
func (it *DateItem) FromString(text string) (any, bool) {
	return parseDate(text)
}

// Serialize implements Item, encoding the value as an RFC 3339 string so any
// codec round-trips it.
func (it *DateItem) Serialize(rec Record, w serialize.Writer) error {
	v, _ := rec.Value(it)
	t, ok := v.(time.Time)
	if !ok {
		if err := w.WriteValue(nil); err != nil {
			return fmt.Errorf("item: serialize %q: %w", it.Label(), err)
		}
		return nil
	}
	if err := w.WriteValue(t.Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("item: serialize %q: %w", it.Label(), err)
	}
	return nil
}

// Deserialize implements Item.
func (it *DateItem) Deserialize(rec Record, r serialize.Reader) error {
	v, err := r.ReadValue()
	if err != nil {
		return fmt.Errorf("item: deserialize %q: %w", it.Label(), err)
	}
	switch tv := v.(type) {
	case nil:
		rec.SetValue(it, nil)
		return nil
	case time.Time:
		rec.SetValue(it, tv)
		return nil
	case string:
		t, ok := parseDate(tv)
		if !ok {
			return fmt.Errorf("item: deserialize %q: %q is not a date", it.Label(), tv)
		}
		rec.SetValue(it, t)
		return nil
	default:
		return fmt.Errorf("item: deserialize %q: %v is not a date", it.Label(), v)
	}
}

// DateTimeItem is a date-and-time field, a pure specialization of DateItem.
type DateTimeItem struct {
	DateItem
}

// NewDateTime declares a date-and-time field.
func NewDateTime(label string) *DateTimeItem {
	it := &DateTimeItem{}
	it.bind(it, label)
	return it
}

// WithDefault sets a constant default value.
func (it *DateTimeItem) WithDefault(v time.Time) *DateTimeItem {
	it.setDefault(property.Static(v))
	return it
}

func parseDate(text string) (any, bool) {
	text = textutil.Normalize(text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return nil, false
}
