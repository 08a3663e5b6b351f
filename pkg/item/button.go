package item

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-dataitem/pkg/property"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

// Callback runs when a button item is activated. parent is whatever
// presentation handle the editor supplies (a prompt driver, a window, nil);
// the return value becomes the item's new value.
type Callback func(rec Record, it Item, value any, parent any) (any, error)

// ErrNoCallback is returned when a button item without a callback is
// activated.
var ErrNoCallback = errors.New("item: button has no callback")

// ErrNoMapEditor is returned when a dict item is activated without a map
// editor, either injected or supplied as the activation parent.
var ErrNoMapEditor = errors.New("item: no map editor available")

// ButtonItem is an action field: it holds no validated data, its value is
// whatever the callback last returned, and it is never persisted.
type ButtonItem struct {
	Base
	callback Callback
}

// NewButton declares an action field.
func NewButton(label string, cb Callback) *ButtonItem {
	it := &ButtonItem{}
	it.bind(it, label)
	it.callback = cb
	return it
}

// WithHelp sets the tooltip text.
func (it *ButtonItem) WithHelp(help string) *ButtonItem {
	it.setHelp(help)
	return it
}

// WithDefault sets the value passed to the callback before its first run.
func (it *ButtonItem) WithDefault(v any) *ButtonItem {
	it.setDefault(property.Static(v))
	return it
}

// WithIcon sets the icon reference shown on the button, resolved by the
// presentation layer (see pkg/icons).
func (it *ButtonItem) WithIcon(name string) *ButtonItem {
	it.SetProp(GroupDisplay, PropIcon, property.Static(name))
	return it
}

// Activate runs the callback with the item's current value and stores the
// result as the new value.
func (it *ButtonItem) Activate(rec Record, parent any) (any, error) {
	if it.callback == nil {
		return nil, ErrNoCallback
	}
	current, _ := rec.Value(it)
	out, err := it.callback(rec, it, current, parent)
	if err != nil {
		return nil, fmt.Errorf("item: activate %q: %w", it.Label(), err)
	}
	rec.SetValue(it, out)
	return out, nil
}

// Serialize implements Item as a no-op: button values are not persisted.
func (it *ButtonItem) Serialize(Record, serialize.Writer) error { return nil }

// Deserialize implements Item as a no-op.
func (it *ButtonItem) Deserialize(Record, serialize.Reader) error { return nil }

// MapEditor edits the key/value payload of a dict item. The capability is
// injected, or discovered on the activation parent, so the core stays free
// of UI imports. accepted is false when the user dismissed the editor.
type MapEditor interface {
	EditMap(label string, value map[string]any) (result map[string]any, accepted bool, err error)
}

// DictItem is a button specialization editing a string-keyed map through a
// pre-bound callback.
type DictItem struct {
	ButtonItem
}

// NewDict declares a dictionary field. editor may be nil; activation then
// expects the parent to implement MapEditor.
func NewDict(label string, editor MapEditor) *DictItem {
	it := &DictItem{}
	it.bind(it, label)
	it.SetProp(GroupDisplay, PropIcon, property.Static("dictedit"))
	it.callback = func(rec Record, self Item, value any, parent any) (any, error) {
		ed := editor
		if ed == nil {
			ed, _ = parent.(MapEditor)
		}
		if ed == nil {
			return nil, ErrNoMapEditor
		}
		// A nil previous value and an empty map are different states: a
		// dismissed editor must not turn "never edited" into "empty".
		wasNil := value == nil
		payload, _ := value.(map[string]any)
		if payload == nil {
			payload = map[string]any{}
		}
		out, accepted, err := ed.EditMap(self.Label(), payload)
		if err != nil {
			return nil, err
		}
		if !accepted {
			if wasNil {
				return nil, nil
			}
			return value, nil
		}
		return out, nil
	}
	return it
}

// WithDefault sets the initial map payload.
func (it *DictItem) WithDefault(v map[string]any) *DictItem {
	it.setDefault(property.Static(v))
	return it
}
