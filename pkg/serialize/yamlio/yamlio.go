// Package yamlio persists a serialize token stream as a YAML document using
// the same envelope layout as jsonio, for callers whose record files live next
// to hand-edited YAML configuration.
package yamlio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-dataitem/pkg/serialize"
)

// envelope never uses omitempty on its payload fields: a scalar false or 0 is
// a legitimate token and must survive the round trip.
type envelope struct {
	Value    any   `yaml:"value"`
	Sequence []any `yaml:"sequence"`
	IsSeq    bool  `yaml:"seq"`
}

// Writer accumulates tokens and emits them as one YAML document on Close.
type Writer struct {
	out    io.Writer
	tokens []envelope
	closed bool
}

// NewWriter returns a Writer emitting to out.
func NewWriter(out io.Writer) *Writer { return &Writer{out: out} }

// WriteValue implements serialize.Writer.
func (w *Writer) WriteValue(v any) error {
	if w.closed {
		return fmt.Errorf("yamlio: write after close")
	}
	w.tokens = append(w.tokens, envelope{Value: v})
	return nil
}

// WriteSequence implements serialize.Writer.
func (w *Writer) WriteSequence(seq []any) error {
	if w.closed {
		return fmt.Errorf("yamlio: write after close")
	}
	if seq == nil {
		seq = []any{}
	}
	w.tokens = append(w.tokens, envelope{Sequence: seq, IsSeq: true})
	return nil
}

// Close flushes the accumulated tokens. The writer is unusable afterwards.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	enc := yaml.NewEncoder(w.out)
	defer enc.Close()
	if err := enc.Encode(w.tokens); err != nil {
		return fmt.Errorf("yamlio: encode stream: %w", err)
	}
	return nil
}

// Reader decodes a YAML token stream produced by Writer.
type Reader struct {
	tokens []envelope
	pos    int
}

// NewReader decodes the stream from in.
func NewReader(in io.Reader) (*Reader, error) {
	var tokens []envelope
	dec := yaml.NewDecoder(in)
	if err := dec.Decode(&tokens); err != nil {
		return nil, fmt.Errorf("yamlio: decode stream: %w", err)
	}
	return &Reader{tokens: tokens}, nil
}

// ReadValue implements serialize.Reader.
func (r *Reader) ReadValue() (any, error) {
	tok, err := r.next()
	if err != nil {
		return nil, err
	}
	if tok.IsSeq {
		return nil, serialize.ErrShape
	}
	return tok.Value, nil
}

// ReadSequence implements serialize.Reader.
func (r *Reader) ReadSequence() ([]any, error) {
	tok, err := r.next()
	if err != nil {
		return nil, err
	}
	if !tok.IsSeq {
		return nil, serialize.ErrShape
	}
	return tok.Sequence, nil
}

func (r *Reader) next() (envelope, error) {
	if r.pos >= len(r.tokens) {
		return envelope{}, serialize.ErrExhausted
	}
	tok := r.tokens[r.pos]
	r.pos++
	return tok, nil
}

var (
	_ serialize.Writer = (*Writer)(nil)
	_ serialize.Reader = (*Reader)(nil)
)
