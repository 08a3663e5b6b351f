package serialize

type token struct {
	scalar any
	seq    []any
	isSeq  bool
}

// Buffer is an in-memory token stream implementing both halves of the
// protocol. It preserves Go values as written, which makes it the reference
// transport for tests and in-process record copies.
type Buffer struct {
	tokens []token
	pos    int
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer { return &Buffer{} }

// WriteValue implements Writer.
func (b *Buffer) WriteValue(v any) error {
	b.tokens = append(b.tokens, token{scalar: v})
	return nil
}

// WriteSequence implements Writer. The sequence is copied so later caller
// mutation cannot reach the stream.
func (b *Buffer) WriteSequence(seq []any) error {
	b.tokens = append(b.tokens, token{seq: append([]any(nil), seq...), isSeq: true})
	return nil
}

// ReadValue implements Reader.
func (b *Buffer) ReadValue() (any, error) {
	tok, err := b.next()
	if err != nil {
		return nil, err
	}
	if tok.isSeq {
		return nil, ErrShape
	}
	return tok.scalar, nil
}

// ReadSequence implements Reader.
func (b *Buffer) ReadSequence() ([]any, error) {
	tok, err := b.next()
	if err != nil {
		return nil, err
	}
	if !tok.isSeq {
		return nil, ErrShape
	}
	return append([]any(nil), tok.seq...), nil
}

func (b *Buffer) next() (token, error) {
	if b.pos >= len(b.tokens) {
		return token{}, ErrExhausted
	}
	tok := b.tokens[b.pos]
	b.pos++
	return tok, nil
}

// Len reports the number of logical values written.
func (b *Buffer) Len() int { return len(b.tokens) }

// Rewind resets the read cursor so the same stream can be consumed again.
func (b *Buffer) Rewind() { b.pos = 0 }
