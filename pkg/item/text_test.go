package item_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-dataitem/pkg/item"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

func TestStringCheckValue(t *testing.T) {
	plain := item.NewString("s")
	if !plain.CheckValue("") {
		t.Fatalf("plain string rejected empty text")
	}
	if plain.CheckValue(42) {
		t.Fatalf("plain string accepted an int")
	}
	if plain.CheckValue(nil) {
		t.Fatalf("plain string accepted nil")
	}

	required := item.NewString("s").NotEmpty()
	if required.CheckValue("") {
		t.Fatalf("notempty string accepted empty text")
	}
	if !required.CheckValue("x") {
		t.Fatalf("notempty string rejected text")
	}
}

func TestStringFromStringNormalizes(t *testing.T) {
	it := item.NewString("s")
	got, ok := it.FromString("a\r\nb")
	if !ok {
		t.Fatalf("FromString failed")
	}
	if got != "a\nb" {
		t.Fatalf("FromString = %q, want normalized line endings", got)
	}

	// Conversion always succeeds for text; emptiness is a validation concern.
	if _, ok := it.FromString(""); !ok {
		t.Fatalf("FromString(\"\") failed")
	}
}

func TestTextItemMarksMultiline(t *testing.T) {
	it := item.NewText("notes")
	if ml, _ := it.Prop(item.GroupDisplay, item.PropMultiline).(bool); !ml {
		t.Fatalf("text item is not marked multiline")
	}
}

func TestColorCheckValue(t *testing.T) {
	it := item.NewColor("c")
	cases := []struct {
		value any
		want  bool
	}{
		{"#fff", true},
		{"#ffff", true},
		{"#00ff00", true},
		{"#00ff00ff", true},
		{"#FFAA00", true},
		{"red", true},
		{"RED", true},
		{"#ff", false},
		{"#ggg", false},
		{"notacolor", false},
		{"", false},
		{42, false},
	}
	for _, tc := range cases {
		if got := it.CheckValue(tc.value); got != tc.want {
			t.Fatalf("CheckValue(%v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestColorWithChecker(t *testing.T) {
	it := item.NewColor("c").WithChecker(func(text string) bool {
		return text == "special"
	})
	if !it.CheckValue("special") {
		t.Fatalf("injected checker not consulted")
	}
	if it.CheckValue("#fff") {
		t.Fatalf("injected checker bypassed")
	}
}

func TestDateFromString(t *testing.T) {
	it := item.NewDate("d")

	got, ok := it.FromString("2024-06-01")
	if !ok {
		t.Fatalf("FromString(date) failed")
	}
	when, isTime := got.(time.Time)
	if !isTime || when.Year() != 2024 || when.Month() != time.June || when.Day() != 1 {
		t.Fatalf("FromString(date) = %v", got)
	}

	if _, ok := it.FromString("2024-06-01T10:30:00Z"); !ok {
		t.Fatalf("FromString(RFC 3339) failed")
	}
	if _, ok := it.FromString("not a date"); ok {
		t.Fatalf("FromString(not a date) succeeded")
	}
}

func TestDateRoundTrip(t *testing.T) {
	it := item.NewDateTime("d")
	rec := newTestRecord()
	when := time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC)
	rec.SetValue(it, when)

	buf := serialize.NewBuffer()
	if err := it.Serialize(rec, buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}

	out := newTestRecord()
	if err := it.Deserialize(out, buf); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	v, _ := out.Value(it)
	loaded, ok := v.(time.Time)
	if !ok || !loaded.Equal(when) {
		t.Fatalf("round trip = %v, want %v", v, when)
	}
}

func TestDateSerializeUnsetWritesNil(t *testing.T) {
	it := item.NewDate("d")
	rec := newTestRecord()
	buf := serialize.NewBuffer()
	if err := it.Serialize(rec, buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	out := newTestRecord()
	if err := it.Deserialize(out, buf); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if _, ok := out.Value(it); ok {
		t.Fatalf("unset date round-tripped into a value")
	}
}
