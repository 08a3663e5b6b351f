// Package serialize defines the writer/reader pair items persist through.
// Every item writes exactly one logical value, a scalar or an ordered
// sequence, per Serialize call, and deserialization consumes exactly what was
// written in the same shape. The stream stays self-describing through the
// item's own fixed contract, never through runtime branching on token counts.
package serialize

import "errors"

// Writer receives the persisted form of item values.
type Writer interface {
	// WriteValue appends a single scalar value.
	WriteValue(v any) error
	// WriteSequence appends one ordered sequence as a single logical value.
	WriteSequence(seq []any) error
}

// Reader mirrors Writer.
type Reader interface {
	// ReadValue consumes the next scalar value.
	ReadValue() (any, error)
	// ReadSequence consumes the next sequence.
	ReadSequence() ([]any, error)
}

var (
	// ErrExhausted is returned when a reader has no tokens left.
	ErrExhausted = errors.New("serialize: no tokens left")
	// ErrShape is returned when a scalar is read where a sequence was written
	// or vice versa.
	ErrShape = errors.New("serialize: token shape mismatch")
)
