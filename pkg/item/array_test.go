package item_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dataitem/pkg/item"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

func TestFloatArrayCheckValue(t *testing.T) {
	it := item.NewFloatArray("weights")
	if !it.CheckValue([]float64{1, 2, 3}) {
		t.Fatalf("vector rejected")
	}
	if !it.CheckValue([][]float64{{1, 2}, {3, 4}}) {
		t.Fatalf("matrix rejected")
	}
	if it.CheckValue([]int{1, 2}) {
		t.Fatalf("int slice accepted")
	}
	if it.CheckValue(nil) {
		t.Fatalf("nil accepted")
	}
}

func TestFloatArrayVectorRoundTrip(t *testing.T) {
	it := item.NewFloatArray("weights")
	rec := newTestRecord()
	rec.SetValue(it, []float64{0.5, 1.5, 2.5})

	buf := serialize.NewBuffer()
	if err := it.Serialize(rec, buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	out := newTestRecord()
	if err := it.Deserialize(out, buf); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	v, _ := out.Value(it)
	if diff := cmp.Diff([]float64{0.5, 1.5, 2.5}, v); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFloatArrayMatrixRoundTrip(t *testing.T) {
	it := item.NewFloatArray("kernel")
	rec := newTestRecord()
	rec.SetValue(it, [][]float64{{1, 0}, {0, 1}})

	buf := serialize.NewBuffer()
	if err := it.Serialize(rec, buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	out := newTestRecord()
	if err := it.Deserialize(out, buf); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	v, _ := out.Value(it)
	if diff := cmp.Diff([][]float64{{1, 0}, {0, 1}}, v); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFloatArrayDisplayDefaults(t *testing.T) {
	it := item.NewFloatArray("weights")
	if got := it.Prop(item.GroupDisplay, item.PropFormat); got != "%.3f" {
		t.Fatalf("format = %v", got)
	}
	if got := it.Prop(item.GroupDisplay, item.PropTranspose); got != false {
		t.Fatalf("transpose = %v", got)
	}
	if got := it.Prop(item.GroupDisplay, item.PropMinMax); got != "all" {
		t.Fatalf("minmax = %v", got)
	}

	tweaked := item.NewFloatArray("weights").WithFormat("%.1f").Transpose().WithMinMax("columns")
	if got := tweaked.Prop(item.GroupDisplay, item.PropFormat); got != "%.1f" {
		t.Fatalf("format = %v", got)
	}
	if got := tweaked.Prop(item.GroupDisplay, item.PropTranspose); got != true {
		t.Fatalf("transpose = %v", got)
	}
	if got := tweaked.Prop(item.GroupDisplay, item.PropMinMax); got != "columns" {
		t.Fatalf("minmax = %v", got)
	}
}
