// Package item implements the typed field descriptors a record type is
// declared from. Each item is a reusable, shareable definition (type,
// constraints, defaults, presentation metadata) independent of any record
// instance; per-instance values live in the container behind the Record
// interface. Items are configured through chainable helpers at declaration
// time and frozen when attached to a record type; after that they are
// read-only and safe for concurrent use without locking.
package item

import (
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

// Record is the container contract items read and write through. Values are
// keyed by item identity: the container must recognise every item attached to
// its record type. The reference implementation lives in pkg/dataset.
type Record interface {
	// Value returns the current value for the item; ok is false when the
	// container holds nothing for it.
	Value(it Item) (any, bool)
	// SetValue stores the current value for the item.
	SetValue(it Item, value any)
}

// Item is the capability surface every concrete descriptor implements. The
// set of implementations in this package is closed; dispatch happens through
// this interface or by switching on the concrete types.
type Item interface {
	// Label is the display name declared for the field.
	Label() string
	// Help is the static tooltip text declared for the field.
	Help() string
	// AutoHelp composes a human-readable constraint description. rec may
	// carry dynamically resolved constraints; pass nil to describe only the
	// static configuration.
	AutoHelp(rec Record) string
	// DefaultValue resolves the declared default for a fresh record. Dynamic
	// defaults receive the record under construction.
	DefaultValue(rec Record) (any, error)
	// CheckValue reports whether a well-typed value satisfies the item's
	// policy. A false result is a validation failure, never an I/O error:
	// filesystem-backed checks fold transient errors into false.
	CheckValue(value any) bool
	// FromString parses external text into a value of the item's type; ok is
	// false on conversion failure. FromString never reports policy
	// violations; callers run CheckValue separately.
	FromString(text string) (value any, ok bool)
	// Serialize writes the item's current value, exactly one logical value,
	// to w.
	Serialize(rec Record, w serialize.Writer) error
	// Deserialize consumes exactly what Serialize wrote and stores the
	// result in rec.
	Deserialize(rec Record, r serialize.Reader) error
	// Prop returns the static value of a configuration attribute; dynamic
	// attributes yield nil here.
	Prop(group, key string) any
	// PropValue resolves a configuration attribute against a record
	// instance.
	PropValue(group string, rec Record, key string) (any, error)
	// Freeze ends the configuration phase. Containers call it when the item
	// is attached to a record type; any later configuration panics.
	Freeze()

	isDataItem()
}

// Property group and attribute names shared by the concrete items. Group/key
// pairs used by an item type are fixed here; unknown keys are never queried.
const (
	GroupData    = "data"
	GroupDisplay = "display"

	PropMin           = "min"
	PropMax           = "max"
	PropNonzero       = "nonzero"
	PropEven          = "even"
	PropNotEmpty      = "notempty"
	PropFormats       = "formats"
	PropBasedir       = "basedir"
	PropAllFilesFirst = "all_files_first"
	PropChoices       = "choices"
	PropText          = "text"
	PropMultiline     = "multiline"
	PropShape         = "shape"
	PropFormat        = "format"
	PropTranspose     = "transpose"
	PropMinMax        = "minmax"
	PropCallback      = "callback"
	PropIcon          = "icon"
)
