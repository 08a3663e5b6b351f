package item

import (
	"fmt"
	"sync/atomic"

	"github.com/goliatone/go-dataitem/pkg/property"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

// Base carries the state every item shares: label, help, default supplier and
// the property groups. Concrete items embed it and override the behaviour
// that differs.
//
// Configuration follows a configure-then-freeze discipline: all With*/Set*
// calls happen at declaration time, Freeze is called when the item is
// attached to a record type, and any later mutation panics. A frozen item is
// read-mostly and safe for concurrent use across record instances.
type Base struct {
	self   Item
	label  string
	help   string
	def    property.Value
	props  property.Groups
	frozen atomic.Bool
}

// bind wires the embedding item back into the base so shared behaviour
// (default resolution, serialization) operates on the concrete item identity.
func (b *Base) bind(self Item, label string) {
	b.self = self
	b.label = label
}

// Label implements Item.
func (b *Base) Label() string { return b.label }

// Help implements Item.
func (b *Base) Help() string { return b.help }

// AutoHelp implements Item. The base form is just the static help text;
// constrained items compose richer descriptions.
func (b *Base) AutoHelp(Record) string { return b.help }

// DefaultValue implements Item.
func (b *Base) DefaultValue(rec Record) (any, error) {
	v, err := b.def.Resolve(b.self, rec)
	if err != nil {
		return nil, fmt.Errorf("item: default for %q: %w", b.label, err)
	}
	return v, nil
}

// CheckValue implements Item; the base accepts everything.
func (b *Base) CheckValue(any) bool { return true }

// FromString implements Item; the base accepts no text input.
func (b *Base) FromString(string) (any, bool) { return nil, false }

// Serialize implements Item by writing the current value as one scalar.
func (b *Base) Serialize(rec Record, w serialize.Writer) error {
	v, _ := rec.Value(b.self)
	if err := w.WriteValue(v); err != nil {
		return fmt.Errorf("item: serialize %q: %w", b.label, err)
	}
	return nil
}

// Deserialize implements Item by reading one scalar.
func (b *Base) Deserialize(rec Record, r serialize.Reader) error {
	v, err := r.ReadValue()
	if err != nil {
		return fmt.Errorf("item: deserialize %q: %w", b.label, err)
	}
	rec.SetValue(b.self, v)
	return nil
}

// Prop implements Item.
func (b *Base) Prop(group, key string) any {
	return b.props.Constant(group, key)
}

// PropValue implements Item.
func (b *Base) PropValue(group string, rec Record, key string) (any, error) {
	v, err := b.props.Resolve(group, key, b.self, rec)
	if err != nil {
		return nil, fmt.Errorf("item: property %s.%s of %q: %w", group, key, b.label, err)
	}
	return v, nil
}

// SetProp stores a configuration attribute. Panics once the item is frozen:
// descriptors are shared across record instances and concurrent mutation is
// undefined behaviour.
func (b *Base) SetProp(group, key string, v property.Value) {
	b.mustBeMutable()
	b.props.Set(group, key, v)
}

// Freeze implements Item.
func (b *Base) Freeze() { b.frozen.Store(true) }

// Frozen reports whether the configuration phase has ended.
func (b *Base) Frozen() bool { return b.frozen.Load() }

func (b *Base) isDataItem() {}

func (b *Base) setHelp(help string) {
	b.mustBeMutable()
	b.help = help
}

func (b *Base) setDefault(v property.Value) {
	b.mustBeMutable()
	b.def = v
}

func (b *Base) mustBeMutable() {
	if b.frozen.Load() {
		panic(fmt.Sprintf("item: %q configured after freeze", b.label))
	}
}
