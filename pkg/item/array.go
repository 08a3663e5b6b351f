package item

import (
	"fmt"

	"github.com/goliatone/go-dataitem/pkg/property"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

// FloatArrayItem holds an opaque numeric payload, a vector or matrix of
// floats. There is no value-level validation beyond the type; the display
// properties (format string, transpose flag, min/max scope) are consumed only
// by the rendering layer.
type FloatArrayItem struct {
	Base
}

// NewFloatArray declares a numeric array field.
func NewFloatArray(label string) *FloatArrayItem {
	it := &FloatArrayItem{}
	it.bind(it, label)
	it.SetProp(GroupDisplay, PropFormat, property.Static("%.3f"))
	it.SetProp(GroupDisplay, PropTranspose, property.Static(false))
	it.SetProp(GroupDisplay, PropMinMax, property.Static("all"))
	return it
}

// WithHelp sets the tooltip text.
func (it *FloatArrayItem) WithHelp(help string) *FloatArrayItem {
	it.setHelp(help)
	return it
}

// WithDefault sets a constant default vector.
func (it *FloatArrayItem) WithDefault(values ...float64) *FloatArrayItem {
	it.setDefault(property.Static(append([]float64(nil), values...)))
	return it
}

// WithMatrixDefault sets a constant default matrix.
func (it *FloatArrayItem) WithMatrixDefault(v [][]float64) *FloatArrayItem {
	it.setDefault(property.Static(v))
	return it
}

// WithFormat sets the per-cell formatting string (e.g. "%.3f").
func (it *FloatArrayItem) WithFormat(format string) *FloatArrayItem {
	it.SetProp(GroupDisplay, PropFormat, property.Static(format))
	return it
}

// Transpose displays the matrix transposed. Display only.
func (it *FloatArrayItem) Transpose() *FloatArrayItem {
	it.SetProp(GroupDisplay, PropTranspose, property.Static(true))
	return it
}

// WithMinMax sets the min/max computation scope: "all", "columns" or "rows".
func (it *FloatArrayItem) WithMinMax(scope string) *FloatArrayItem {
	it.SetProp(GroupDisplay, PropMinMax, property.Static(scope))
	return it
}

// CheckValue implements Item: vectors and matrices of float64 pass, anything
// else fails on type.
func (it *FloatArrayItem) CheckValue(value any) bool {
	switch value.(type) {
	case []float64, [][]float64:
		return true
	default:
		return false
	}
}

// Serialize implements Item. Vectors write as one sequence; matrices write as
// one sequence of row sequences. One logical value either way.
func (it *FloatArrayItem) Serialize(rec Record, w serialize.Writer) error {
	v, _ := rec.Value(it)
	var seq []any
	switch payload := v.(type) {
	case []float64:
		seq = floatsToAny(payload)
	case [][]float64:
		seq = make([]any, len(payload))
		for idx, row := range payload {
			seq[idx] = floatsToAny(row)
		}
	case nil:
		seq = []any{}
	default:
		return fmt.Errorf("item: serialize %q: %T is not a numeric array", it.Label(), v)
	}
	if err := w.WriteSequence(seq); err != nil {
		return fmt.Errorf("item: serialize %q: %w", it.Label(), err)
	}
	return nil
}

// Deserialize implements Item, re-narrowing the codec payload to []float64 or
// [][]float64.
func (it *FloatArrayItem) Deserialize(rec Record, r serialize.Reader) error {
	seq, err := r.ReadSequence()
	if err != nil {
		return fmt.Errorf("item: deserialize %q: %w", it.Label(), err)
	}
	if len(seq) == 0 {
		rec.SetValue(it, nil)
		return nil
	}
	if _, nested := seq[0].([]any); nested {
		matrix := make([][]float64, 0, len(seq))
		for _, raw := range seq {
			rowSeq, ok := raw.([]any)
			if !ok {
				return fmt.Errorf("item: deserialize %q: ragged matrix payload", it.Label())
			}
			row, ok := anyToFloats(rowSeq)
			if !ok {
				return fmt.Errorf("item: deserialize %q: non-numeric matrix entry", it.Label())
			}
			matrix = append(matrix, row)
		}
		rec.SetValue(it, matrix)
		return nil
	}
	vector, ok := anyToFloats(seq)
	if !ok {
		return fmt.Errorf("item: deserialize %q: non-numeric array entry", it.Label())
	}
	rec.SetValue(it, vector)
	return nil
}

func floatsToAny(values []float64) []any {
	out := make([]any, len(values))
	for idx, v := range values {
		out[idx] = v
	}
	return out
}

func anyToFloats(values []any) ([]float64, bool) {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		f, ok := asFloat(v)
		if !ok {
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}
