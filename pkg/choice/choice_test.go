package choice_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dataitem/pkg/choice"
)

func TestLabels(t *testing.T) {
	got := choice.Labels("red", "green", "blue")
	want := choice.List{
		{Key: 0, Label: "red"},
		{Key: 1, Label: "green"},
		{Key: 2, Label: "blue"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Labels mismatch (-want +got):\n%s", diff)
	}
}

func TestPairs(t *testing.T) {
	got := choice.Pairs(
		choice.Pair{Key: "r", Label: "red"},
		choice.Pair{Key: "g", Label: "green"},
	)
	want := choice.List{
		{Key: "r", Label: "red"},
		{Key: "g", Label: "green"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize(t *testing.T) {
	got := choice.Normalize(choice.List{
		{Label: "first"},
		{Key: "x", Label: "second\r\nline"},
	})
	want := choice.List{
		{Key: 0, Label: "first"},
		{Key: "x", Label: "second\nline"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestWithIcons(t *testing.T) {
	got, err := choice.WithIcons(
		choice.Entry{Key: "a", Label: "Alpha", Icon: "alpha.svg"},
		choice.Entry{Key: "b", Label: "Beta", Icon: "beta.svg"},
	)
	if err != nil {
		t.Fatalf("WithIcons: %v", err)
	}
	if len(got) != 2 || got[1].Icon != "beta.svg" {
		t.Fatalf("unexpected list: %#v", got)
	}

	if _, err := choice.WithIcons(choice.Entry{Key: "a", Label: "Alpha"}); err == nil {
		t.Fatalf("WithIcons accepted an icon-less entry")
	}
}

func TestListValidate(t *testing.T) {
	ok := choice.List{{Key: "a", Label: "A"}, {Key: "b", Label: "B"}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	dup := choice.List{{Key: "a", Label: "A"}, {Key: "a", Label: "B"}}
	if err := dup.Validate(); err == nil {
		t.Fatalf("Validate accepted duplicate keys")
	}
}

func TestListAccessors(t *testing.T) {
	l := choice.Labels("x", "y", "z")
	if got := l.Index(1); got != 1 {
		t.Fatalf("Index(1) = %d", got)
	}
	if got := l.Index("missing"); got != -1 {
		t.Fatalf("Index(missing) = %d, want -1", got)
	}
	if diff := cmp.Diff([]any{0, 1, 2}, l.Keys()); diff != "" {
		t.Fatalf("Keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "y", "z"}, l.LabelStrings()); diff != "" {
		t.Fatalf("LabelStrings mismatch (-want +got):\n%s", diff)
	}
}

func TestStaticSource(t *testing.T) {
	src := choice.StaticOf(choice.Labels("a", "b"))
	if src.IsDynamic() {
		t.Fatalf("static source reports dynamic")
	}
	lst, ok := src.Static()
	if !ok || len(lst) != 2 {
		t.Fatalf("Static() = %v, %v", lst, ok)
	}
	resolved, err := src.Resolve(nil, nil)
	if err != nil {
		t.Fatalf("Resolve static without instance: %v", err)
	}
	if diff := cmp.Diff(lst, resolved); diff != "" {
		t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestDynamicSource(t *testing.T) {
	src := choice.DynamicOf(func(owner, instance any) (choice.List, error) {
		return choice.Labels("one", "two"), nil
	})
	if !src.IsDynamic() {
		t.Fatalf("dynamic source reports static")
	}
	if _, ok := src.Static(); ok {
		t.Fatalf("Static() on dynamic source returned a list")
	}

	if _, err := src.Resolve(nil, nil); err == nil {
		t.Fatalf("Resolve without instance succeeded")
	}

	lst, err := src.Resolve(nil, struct{}{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(lst) != 2 || lst[1].Label != "two" {
		t.Fatalf("unexpected list: %#v", lst)
	}
}

func TestDynamicSourceErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := choice.DynamicOf(func(owner, instance any) (choice.List, error) {
		return nil, boom
	})
	if _, err := failing.Resolve(nil, struct{}{}); !errors.Is(err, boom) {
		t.Fatalf("Resolve error = %v, want wrapped boom", err)
	}

	duplicated := choice.DynamicOf(func(owner, instance any) (choice.List, error) {
		return choice.List{{Key: "a", Label: "A"}, {Key: "a", Label: "B"}}, nil
	})
	if _, err := duplicated.Resolve(nil, struct{}{}); err == nil {
		t.Fatalf("Resolve accepted duplicate keys from generator")
	}
}
