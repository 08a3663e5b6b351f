package jsonio_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dataitem/pkg/serialize"
	"github.com/goliatone/go-dataitem/pkg/serialize/jsonio"
)

func TestRoundTrip(t *testing.T) {
	var doc bytes.Buffer
	w := jsonio.NewWriter(&doc)

	if err := w.WriteValue("hello"); err != nil {
		t.Fatalf("WriteValue: %v", err)
	}
	// Zero-ish scalars must survive: no omitempty shortcuts.
	if err := w.WriteValue(false); err != nil {
		t.Fatalf("WriteValue(false): %v", err)
	}
	if err := w.WriteValue(0); err != nil {
		t.Fatalf("WriteValue(0): %v", err)
	}
	if err := w.WriteSequence([]any{true, false, true}); err != nil {
		t.Fatalf("WriteSequence: %v", err)
	}
	if err := w.WriteSequence(nil); err != nil {
		t.Fatalf("WriteSequence(nil): %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := jsonio.NewReader(&doc)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	v, err := r.ReadValue()
	if err != nil || v != "hello" {
		t.Fatalf("ReadValue = %v, %v", v, err)
	}
	v, err = r.ReadValue()
	if err != nil || v != false {
		t.Fatalf("ReadValue(false) = %v, %v", v, err)
	}
	v, err = r.ReadValue()
	if err != nil {
		t.Fatalf("ReadValue(0): %v", err)
	}
	if n, ok := v.(float64); !ok || n != 0 {
		t.Fatalf("ReadValue(0) = %v (%T)", v, v)
	}
	seq, err := r.ReadSequence()
	if err != nil {
		t.Fatalf("ReadSequence: %v", err)
	}
	if diff := cmp.Diff([]any{true, false, true}, seq); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}
	seq, err = r.ReadSequence()
	if err != nil || len(seq) != 0 {
		t.Fatalf("empty sequence = %v, %v", seq, err)
	}

	if _, err := r.ReadValue(); !errors.Is(err, serialize.ErrExhausted) {
		t.Fatalf("read past end = %v, want ErrExhausted", err)
	}
}

func TestShapeMismatch(t *testing.T) {
	var doc bytes.Buffer
	w := jsonio.NewWriter(&doc)
	_ = w.WriteValue("scalar")
	_ = w.WriteSequence([]any{1})
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := jsonio.NewReader(&doc)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if _, err := r.ReadSequence(); !errors.Is(err, serialize.ErrShape) {
		t.Fatalf("ReadSequence on scalar = %v, want ErrShape", err)
	}
	if _, err := r.ReadValue(); !errors.Is(err, serialize.ErrShape) {
		t.Fatalf("ReadValue on sequence = %v, want ErrShape", err)
	}
}

func TestWriteAfterClose(t *testing.T) {
	w := jsonio.NewWriter(&bytes.Buffer{})
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.WriteValue(1); err == nil {
		t.Fatalf("WriteValue after Close succeeded")
	}
}

func TestReaderRejectsGarbage(t *testing.T) {
	if _, err := jsonio.NewReader(bytes.NewBufferString("not json")); err == nil {
		t.Fatalf("NewReader accepted garbage")
	}
}
