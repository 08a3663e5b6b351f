package item_test

import (
	"testing"

	"github.com/goliatone/go-dataitem/pkg/item"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

func TestIntCheckValue(t *testing.T) {
	cases := []struct {
		name  string
		item  *item.IntItem
		value any
		want  bool
	}{
		{"plain int", item.NewInt("n"), 5, true},
		{"wrong type float", item.NewInt("n"), 5.0, false},
		{"wrong type string", item.NewInt("n"), "5", false},
		{"nil", item.NewInt("n"), nil, false},
		{"below min", item.NewInt("n").WithMin(10), 9, false},
		{"at min", item.NewInt("n").WithMin(10), 10, true},
		{"above max", item.NewInt("n").WithMax(10), 11, false},
		{"at max", item.NewInt("n").WithMax(10), 10, true},
		{"nonzero rejects zero", item.NewInt("n").Nonzero(), 0, false},
		{"nonzero passes one", item.NewInt("n").Nonzero(), 1, true},
		{"zero inside range without nonzero", item.NewInt("n").WithMin(-5).WithMax(5), 0, true},
		{"even accepts even", item.NewInt("n").Even(true), 4, true},
		{"even rejects odd", item.NewInt("n").Even(true), 3, false},
		{"odd accepts odd", item.NewInt("n").Even(false), 3, true},
		{"odd rejects even", item.NewInt("n").Even(false), 4, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.CheckValue(tc.value); got != tc.want {
				t.Fatalf("CheckValue(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestIntFromString(t *testing.T) {
	it := item.NewInt("n")

	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"42", 42, true},
		{"2+2", 4, true},
		{"2*(3+4)", 14, true},
		{"-8", -8, true},
		{"7/2", 3, true},    // truncated toward zero
		{"-7/2", -3, true},  // truncated toward zero
		{"3.9", 3, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1/0", 0, false},
		{"2+", 0, false},
	}
	for _, tc := range cases {
		got, ok := it.FromString(tc.input)
		if ok != tc.ok {
			t.Fatalf("FromString(%q) ok = %v, want %v", tc.input, ok, tc.ok)
		}
		if !ok {
			if got != nil {
				t.Fatalf("FromString(%q) failed but returned %v", tc.input, got)
			}
			continue
		}
		if got != tc.want {
			t.Fatalf("FromString(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIntFromStringDoesNotCheckRange(t *testing.T) {
	it := item.NewInt("n").WithMin(0).WithMax(10)
	got, ok := it.FromString("99")
	if !ok || got != 99 {
		t.Fatalf("FromString(99) = %v, %v; conversion must ignore range", got, ok)
	}
	if it.CheckValue(got) {
		t.Fatalf("CheckValue(99) passed with max 10")
	}
}

func TestIntAutoHelp(t *testing.T) {
	cases := []struct {
		name string
		item *item.IntItem
		want string
	}{
		{"bare", item.NewInt("n"), "integer"},
		{"range", item.NewInt("n").WithMin(1).WithMax(10), "integer between 1 and 10"},
		{"min only", item.NewInt("n").WithMin(1), "integer higher than 1"},
		{"max only", item.NewInt("n").WithMax(10), "integer lower than 10"},
		{"nonzero", item.NewInt("n").Nonzero(), "integer, non zero"},
		{"even", item.NewInt("n").Even(true), "integer, even"},
		{"odd range", item.NewInt("n").WithMin(1).WithMax(9).Even(false), "integer between 1 and 9, odd"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.AutoHelp(nil); got != tc.want {
				t.Fatalf("AutoHelp() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFloatCheckValue(t *testing.T) {
	cases := []struct {
		name  string
		item  *item.FloatItem
		value any
		want  bool
	}{
		{"plain float", item.NewFloat("f"), 1.5, true},
		{"int is not float", item.NewFloat("f"), 1, false},
		{"below min", item.NewFloat("f").WithMin(0), -0.1, false},
		{"above max", item.NewFloat("f").WithMax(1), 1.1, false},
		{"inside range", item.NewFloat("f").WithMin(0).WithMax(1), 0.5, true},
		{"nonzero rejects zero", item.NewFloat("f").Nonzero(), 0.0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.CheckValue(tc.value); got != tc.want {
				t.Fatalf("CheckValue(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestFloatFromString(t *testing.T) {
	it := item.NewFloat("f")
	got, ok := it.FromString("1/4")
	if !ok || got != 0.25 {
		t.Fatalf("FromString(1/4) = %v, %v", got, ok)
	}
	if _, ok := it.FromString("one"); ok {
		t.Fatalf("FromString(one) succeeded")
	}
}

func TestIntDeserializeRenarrows(t *testing.T) {
	it := item.NewInt("n")
	rec := newTestRecord()

	buf := serialize.NewBuffer()
	if err := buf.WriteValue(float64(7)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := it.Deserialize(rec, buf); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	v, _ := rec.Value(it)
	if v != 7 {
		t.Fatalf("stored %v (%T), want int 7", v, v)
	}

	buf = serialize.NewBuffer()
	_ = buf.WriteValue(7.5)
	if err := it.Deserialize(rec, buf); err == nil {
		t.Fatalf("deserialize accepted non-integral 7.5")
	}
}

func TestNumericRoundTrip(t *testing.T) {
	n := item.NewInt("n").WithDefault(3)
	f := item.NewFloat("f")
	rec := newTestRecord()
	rec.SetValue(n, 12)
	rec.SetValue(f, 2.5)

	buf := serialize.NewBuffer()
	if err := n.Serialize(rec, buf); err != nil {
		t.Fatalf("serialize int: %v", err)
	}
	if err := f.Serialize(rec, buf); err != nil {
		t.Fatalf("serialize float: %v", err)
	}

	out := newTestRecord()
	if err := n.Deserialize(out, buf); err != nil {
		t.Fatalf("deserialize int: %v", err)
	}
	if err := f.Deserialize(out, buf); err != nil {
		t.Fatalf("deserialize float: %v", err)
	}
	if v, _ := out.Value(n); v != 12 {
		t.Fatalf("int round trip = %v", v)
	}
	if v, _ := out.Value(f); v != 2.5 {
		t.Fatalf("float round trip = %v", v)
	}
}
