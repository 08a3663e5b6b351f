package item

import (
	"fmt"
	"math"

	"github.com/goliatone/go-dataitem/internal/arith"
	"github.com/goliatone/go-dataitem/internal/textutil"
	"github.com/goliatone/go-dataitem/pkg/property"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

// IntItem is an integer field with optional range, nonzero and parity
// constraints.
type IntItem struct {
	Base
}

// NewInt declares an integer field.
func NewInt(label string) *IntItem {
	it := &IntItem{}
	it.bind(it, label)
	return it
}

// WithHelp sets the tooltip text.
func (it *IntItem) WithHelp(help string) *IntItem {
	it.setHelp(help)
	return it
}

// WithDefault sets a constant default value.
func (it *IntItem) WithDefault(v int) *IntItem {
	it.setDefault(property.Static(v))
	return it
}

// WithDynamicDefault computes the default from the record under construction.
func (it *IntItem) WithDynamicDefault(fn property.Resolver) *IntItem {
	it.setDefault(property.Dynamic(fn))
	return it
}

// WithMin sets the inclusive minimum bound.
func (it *IntItem) WithMin(v int) *IntItem {
	it.SetProp(GroupData, PropMin, property.Static(v))
	return it
}

// WithMax sets the inclusive maximum bound.
func (it *IntItem) WithMax(v int) *IntItem {
	it.SetProp(GroupData, PropMax, property.Static(v))
	return it
}

// Nonzero rejects zero regardless of range constraints.
func (it *IntItem) Nonzero() *IntItem {
	it.SetProp(GroupData, PropNonzero, property.Static(true))
	return it
}

// Even constrains parity: true accepts only even values, false only odd ones.
func (it *IntItem) Even(even bool) *IntItem {
	it.SetProp(GroupData, PropEven, property.Static(even))
	return it
}

// CheckValue implements Item. The checks run in a fixed order: exact type,
// nonzero, minimum, maximum, parity.
func (it *IntItem) CheckValue(value any) bool {
	v, ok := value.(int)
	if !ok {
		return false
	}
	if nonzero, _ := it.Prop(GroupData, PropNonzero).(bool); nonzero && v == 0 {
		return false
	}
	if min, ok := it.Prop(GroupData, PropMin).(int); ok && v < min {
		return false
	}
	if max, ok := it.Prop(GroupData, PropMax).(int); ok && v > max {
		return false
	}
	if even, ok := it.Prop(GroupData, PropEven).(bool); ok {
		isEven := v%2 == 0
		if even != isEven {
			return false
		}
	}
	return true
}

// FromString implements Item. The text must match the restricted arithmetic
// grammar; the evaluated result is truncated toward zero like the widget
// input it replaces.
func (it *IntItem) FromString(text string) (any, bool) {
	f, ok := evalNumeric(text)
	if !ok {
		return nil, false
	}
	return int(f), true
}

// AutoHelp implements Item.
func (it *IntItem) AutoHelp(rec Record) string {
	help := numericAutoHelp(it, rec, "integer")
	if even, ok := resolveProp(it, rec, GroupData, PropEven).(bool); ok {
		if even {
			help += ", even"
		} else {
			help += ", odd"
		}
	}
	return help
}

// Deserialize implements Item, re-narrowing codec-widened numbers to int.
func (it *IntItem) Deserialize(rec Record, r serialize.Reader) error {
	v, err := r.ReadValue()
	if err != nil {
		return fmt.Errorf("item: deserialize %q: %w", it.Label(), err)
	}
	if v == nil {
		rec.SetValue(it, nil)
		return nil
	}
	n, ok := asInt(v)
	if !ok {
		return fmt.Errorf("item: deserialize %q: %v is not an integer", it.Label(), v)
	}
	rec.SetValue(it, n)
	return nil
}

// FloatItem is a floating point field with optional range and nonzero
// constraints.
type FloatItem struct {
	Base
}

// NewFloat declares a float field.
func NewFloat(label string) *FloatItem {
	it := &FloatItem{}
	it.bind(it, label)
	return it
}

// WithHelp sets the tooltip text.
func (it *FloatItem) WithHelp(help string) *FloatItem {
	it.setHelp(help)
	return it
}

// WithDefault sets a constant default value.
func (it *FloatItem) WithDefault(v float64) *FloatItem {
	it.setDefault(property.Static(v))
	return it
}

// WithDynamicDefault computes the default from the record under construction.
func (it *FloatItem) WithDynamicDefault(fn property.Resolver) *FloatItem {
	it.setDefault(property.Dynamic(fn))
	return it
}

// WithMin sets the inclusive minimum bound.
func (it *FloatItem) WithMin(v float64) *FloatItem {
	it.SetProp(GroupData, PropMin, property.Static(v))
	return it
}

// WithMax sets the inclusive maximum bound.
func (it *FloatItem) WithMax(v float64) *FloatItem {
	it.SetProp(GroupData, PropMax, property.Static(v))
	return it
}

// Nonzero rejects zero regardless of range constraints.
func (it *FloatItem) Nonzero() *FloatItem {
	it.SetProp(GroupData, PropNonzero, property.Static(true))
	return it
}

// CheckValue implements Item.
func (it *FloatItem) CheckValue(value any) bool {
	v, ok := value.(float64)
	if !ok {
		return false
	}
	if nonzero, _ := it.Prop(GroupData, PropNonzero).(bool); nonzero && v == 0 {
		return false
	}
	if min, ok := it.Prop(GroupData, PropMin).(float64); ok && v < min {
		return false
	}
	if max, ok := it.Prop(GroupData, PropMax).(float64); ok && v > max {
		return false
	}
	return true
}

// FromString implements Item.
func (it *FloatItem) FromString(text string) (any, bool) {
	f, ok := evalNumeric(text)
	if !ok {
		return nil, false
	}
	return f, true
}

// AutoHelp implements Item.
func (it *FloatItem) AutoHelp(rec Record) string {
	return numericAutoHelp(it, rec, "float")
}

// Deserialize implements Item, re-narrowing codec numbers to float64.
func (it *FloatItem) Deserialize(rec Record, r serialize.Reader) error {
	v, err := r.ReadValue()
	if err != nil {
		return fmt.Errorf("item: deserialize %q: %w", it.Label(), err)
	}
	if v == nil {
		rec.SetValue(it, nil)
		return nil
	}
	f, ok := asFloat(v)
	if !ok {
		return fmt.Errorf("item: deserialize %q: %v is not a number", it.Label(), v)
	}
	rec.SetValue(it, f)
	return nil
}

// evalNumeric runs text through the boundary normalization and the restricted
// arithmetic grammar. Parse and evaluation errors are downgraded to a
// conversion failure; they are never a validation failure and never
// propagate.
func evalNumeric(text string) (float64, bool) {
	text = textutil.Normalize(text)
	if !arith.Looks(text) {
		return 0, false
	}
	f, err := arith.Eval(text)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// numericAutoHelp composes the range description shared by the numeric items,
// resolving dynamic bounds against rec when one is supplied.
func numericAutoHelp(it Item, rec Record, kind string) string {
	help := kind
	min := resolveProp(it, rec, GroupData, PropMin)
	max := resolveProp(it, rec, GroupData, PropMax)
	switch {
	case min != nil && max != nil:
		help += fmt.Sprintf(" between %v and %v", min, max)
	case min != nil:
		help += fmt.Sprintf(" higher than %v", min)
	case max != nil:
		help += fmt.Sprintf(" lower than %v", max)
	}
	if nonzero, _ := resolveProp(it, rec, GroupData, PropNonzero).(bool); nonzero {
		help += ", non zero"
	}
	return help
}

// resolveProp reads a property for help generation: static view without a
// record, dynamic resolution with one. Resolution failures degrade to "no
// constraint"; help text is advisory.
func resolveProp(it Item, rec Record, group, key string) any {
	if rec == nil {
		return it.Prop(group, key)
	}
	v, err := it.PropValue(group, rec, key)
	if err != nil {
		return nil
	}
	return v
}
