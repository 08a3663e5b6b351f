// Package jsonio persists a serialize token stream as a JSON document: an
// array of envelopes, one per logical value, each carrying either "value" or
// "sequence". The envelope keeps scalar and sequence tokens distinguishable
// without the reader guessing shapes.
package jsonio

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-dataitem/pkg/serialize"
)

// envelope never uses omitempty on its payload fields: a scalar false or 0 is
// a legitimate token and must survive the round trip.
type envelope struct {
	Value    any   `json:"value"`
	Sequence []any `json:"sequence"`
	IsSeq    bool  `json:"seq"`
}

// Writer accumulates tokens and emits them as one JSON array on Close.
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
		return fmt.Errorf("jsonio: write after close")
	}
	w.tokens = append(w.tokens, envelope{Value: v})
	return nil
}

// WriteSequence implements serialize.Writer.
func (w *Writer) WriteSequence(seq []any) error {
	if w.closed {
		return fmt.Errorf("jsonio: write after close")
	}
	if seq == nil {
		seq = []any{}
	}
	w.tokens = append(w.tokens, envelope{Sequence: seq, IsSeq: true})
	return nil
}

// Close flushes the accumulated tokens as a JSON array. The writer is
// unusable afterwards.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	enc := json.NewEncoder(w.out)
	if err := enc.Encode(w.tokens); err != nil {
		return fmt.Errorf("jsonio: encode stream: %w", err)
	}
	return nil
}

// Reader decodes a JSON token stream produced by Writer. The whole document
// is decoded up front; tokens are then served in order.
type Reader struct {
	tokens []envelope
	pos    int
}

// NewReader decodes the stream from in.
func NewReader(in io.Reader) (*Reader, error) {
	var tokens []envelope
	dec := json.NewDecoder(in)
	if err := dec.Decode(&tokens); err != nil {
		return nil, fmt.Errorf("jsonio: decode stream: %w", err)
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
