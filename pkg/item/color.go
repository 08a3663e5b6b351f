package item

import "strings"

// ColorChecker reports whether text names a valid color. The capability is
// injected by the presentation layer; the validation core stays free of any
// GUI toolkit import.
type ColorChecker func(text string) bool

// ColorItem stores a color as text (hex string or named color). It is the one
// item whose validation leans on a presentation-layer helper.
type ColorItem struct {
	StringItem
	checker ColorChecker
}

// NewColor declares a color field validated by DefaultColorChecker until a
// presentation-layer checker is injected.
func NewColor(label string) *ColorItem {
	it := &ColorItem{}
	it.bind(it, label)
	return it
}

// WithChecker injects the color-validity capability.
func (it *ColorItem) WithChecker(fn ColorChecker) *ColorItem {
	it.mustBeMutable()
	it.checker = fn
	return it
}

// WithDefault sets a constant default value.
func (it *ColorItem) WithDefault(v string) *ColorItem {
	it.StringItem.WithDefault(v)
	return it
}

// CheckValue implements Item: the value must be text and parse as a valid
// color specification.
func (it *ColorItem) CheckValue(value any) bool {
	v, ok := value.(string)
	if !ok {
		return false
	}
	checker := it.checker
	if checker == nil {
		checker = DefaultColorChecker
	}
	return checker(v)
}

// DefaultColorChecker accepts #rgb/#rgba/#rrggbb/#rrggbbaa hex strings and
// the basic named colors. Presentation layers with a richer color model
// replace it through WithChecker.
func DefaultColorChecker(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return false
	}
	if strings.HasPrefix(text, "#") {
		digits := text[1:]
		switch len(digits) {
		case 3, 4, 6, 8:
		default:
			return false
		}
		for _, r := range digits {
			if !strings.ContainsRune("0123456789abcdef", r) {
				return false
			}
		}
		return true
	}
	_, ok := namedColors[text]
	return ok
}

var namedColors = map[string]struct{}{
	"aqua": {}, "black": {}, "blue": {}, "cyan": {}, "fuchsia": {},
	"gray": {}, "green": {}, "grey": {}, "lime": {}, "magenta": {},
	"maroon": {}, "navy": {}, "olive": {}, "orange": {}, "purple": {},
	"red": {}, "silver": {}, "teal": {}, "transparent": {}, "white": {},
	"yellow": {},
}
